package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"carbontradle.org/internal/logging"
)

// ReadJSONFile decodes the JSON document at path into v.
func ReadJSONFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer logging.SafeCloseWithLogging(f, slog.Default(), "read "+path)

	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// WriteJSONFile writes v to path as indented JSON followed by a newline.
// The file is only created once v has been encoded.
func WriteJSONFile(path string, v any, indent string) (err error) {
	data, err := json.MarshalIndent(v, "", indent)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer logging.HandleDeferredError(&err, f.Close, slog.Default(), "close "+path)

	if _, err = f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// JSONOutput is one file written by WriteJSONFiles.
type JSONOutput struct {
	Path  string
	Value any
}

// WriteJSONFiles writes every output or none of them. All values are encoded
// and written to temporary files next to their targets first; the targets
// are only replaced once every temporary file is complete.
func WriteJSONFiles(outputs []JSONOutput, indent string) (err error) {
	encoded := make([][]byte, len(outputs))
	for i, o := range outputs {
		data, err := json.MarshalIndent(o.Value, "", indent)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", o.Path, err)
		}
		encoded[i] = append(data, '\n')
	}

	temps := make([]string, 0, len(outputs))
	defer func() {
		if err == nil {
			return
		}
		for _, tmp := range temps {
			if rmErr := os.Remove(tmp); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
				slog.Default().Warn("failed to remove temporary file",
					slog.String("path", tmp),
					slog.String("error", rmErr.Error()))
			}
		}
	}()

	for i, o := range outputs {
		tmp, err := writeTemp(o.Path, encoded[i])
		if tmp != "" {
			temps = append(temps, tmp)
		}
		if err != nil {
			return err
		}
	}

	for i, o := range outputs {
		if err := os.Rename(temps[i], o.Path); err != nil {
			return fmt.Errorf("replacing %s: %w", o.Path, err)
		}
	}
	return nil
}

// writeTemp writes data to a new temporary file in path's directory and
// returns its name.
func writeTemp(path string, data []byte) (name string, err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	name = f.Name()
	defer logging.HandleDeferredError(&err, f.Close, slog.Default(), "close "+name)

	if err = f.Chmod(0o644); err != nil {
		return name, fmt.Errorf("writing %s: %w", path, err)
	}
	if _, err = f.Write(data); err != nil {
		return name, fmt.Errorf("writing %s: %w", path, err)
	}
	return name, nil
}
