package appconf

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"carbontradle.org/internal/taxonomy"
	"carbontradle.org/internal/utils"
)

// Pipeline configures one run of the emissions pipeline.
type Pipeline struct {
	BaseURL    string        `yaml:"base_url"`
	TokenEnv   string        `yaml:"token_env"`
	Timeout    time.Duration `yaml:"timeout"`
	Year       int           `yaml:"year"`
	BatchSize  int           `yaml:"batch_size"`
	Countries  []string      `yaml:"countries"`
	Sectors    []string      `yaml:"sectors"`
	Subsectors []string      `yaml:"subsectors"`
	Output     Outputs       `yaml:"output"`
}

// Outputs names the flat files a run reads and writes.
type Outputs struct {
	Simplified string `yaml:"simplified"`
	Net        string `yaml:"net"`
	Gross      string `yaml:"gross"`
	Breakdown  string `yaml:"breakdown"`
}

// DefaultPipeline returns the settings used when no run file is given.
func DefaultPipeline() Pipeline {
	return Pipeline{
		BaseURL:   "https://api.climatetrace.org",
		TokenEnv:  "CLIMATETRACE_API_TOKEN",
		Timeout:   60 * time.Second,
		Year:      2022,
		BatchSize: 50,
		Countries: taxonomy.CountryCodes(),
		Output: Outputs{
			Simplified: "simplified_emissions.json",
			Net:        "net_emissions.json",
			Gross:      "gross_emissions.json",
			Breakdown:  "subsector_breakdown.json",
		},
	}
}

// LoadPipeline reads a YAML run file over the defaults and validates the
// result. Keys missing from the file keep their default values.
func LoadPipeline(path string) (Pipeline, error) {
	cfg := DefaultPipeline()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading pipeline config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing pipeline config %q: %w", path, err)
	}

	cfg.Countries = utils.NormalizeCountryCodes(cfg.Countries)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid pipeline config %q: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the run settings. Subsectors outside the taxonomy are
// allowed since the upstream vocabulary can grow; they simplify to "unknown".
func (p Pipeline) Validate() error {
	var errs []error

	if p.BaseURL == "" {
		errs = append(errs, errors.New("base_url is required"))
	}
	if err := utils.ValidateYear(p.Year); err != nil {
		errs = append(errs, err)
	}
	if err := utils.ValidateBatchSize(p.BatchSize); err != nil {
		errs = append(errs, err)
	}
	if err := utils.ValidateCountryCodes(p.Countries); err != nil {
		errs = append(errs, err)
	}
	for _, s := range p.Sectors {
		if !taxonomy.IsSector(s) {
			errs = append(errs, fmt.Errorf("unknown sector %q", s))
		}
	}
	for _, s := range p.Subsectors {
		if err := utils.ValidateSlug(s); err != nil {
			errs = append(errs, err)
		}
	}
	if p.Timeout < 0 {
		errs = append(errs, errors.New("timeout cannot be negative"))
	}

	return errors.Join(errs...)
}

// Token returns the API bearer token from the configured environment
// variable, or "" when unset.
func (p Pipeline) Token() string {
	if p.TokenEnv == "" {
		return ""
	}
	return os.Getenv(p.TokenEnv)
}
