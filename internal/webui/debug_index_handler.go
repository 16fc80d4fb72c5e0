package webui

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"

	"carbontradle.org/internal/taxonomy"
)

//go:embed debug_index.html
var templateFS embed.FS

var debugTemplate = template.Must(template.ParseFS(templateFS, "debug_index.html"))

// dataTypes lists the values accepted by the dataType query parameter.
var dataTypes = []string{"sectors", "subsectors", "countries", "coordinates", "config"}

type debugData struct {
	Title     string
	Pre       string
	DataTypes []string
}

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	err := debugTemplate.Execute(w, debugData{
		Title:     title,
		Pre:       spew.Sdump(data),
		DataTypes: dataTypes,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	dataType := r.URL.Query().Get("dataType")

	var data interface{}
	var title string

	switch dataType {
	case "sectors":
		bySector := make(map[string][]string)
		for _, sector := range taxonomy.Sectors() {
			bySector[sector] = taxonomy.SubsectorsOf(sector)
		}
		data = bySector
		title = "Taxonomy - Subsectors by Sector"
	case "subsectors":
		parents := make(map[string]string)
		for _, subsector := range taxonomy.Subsectors() {
			parents[subsector] = taxonomy.SectorOf(subsector)
		}
		data = parents
		title = "Taxonomy - Sector of each Subsector"
	case "countries":
		names := make(map[string]string)
		for _, code := range taxonomy.CountryCodes() {
			names[code] = taxonomy.CountryName(code)
		}
		data = names
		title = "Taxonomy - Countries"
	case "coordinates":
		data = webUI.Coordinates
		title = "Guess Feedback - Country Coordinates"
	case "config":
		cfg := webUI.Config
		if cfg.APIKey != "" {
			cfg.APIKey = "[redacted]"
		}
		data = cfg
		title = "Relay Server - Configuration"
	default:
		data = map[string]string{
			"error": "Please use one of the following: sectors, subsectors, countries, coordinates, config.",
		}
		title = "Choose a data type"
	}

	writeDebugData(w, title, data)
}
