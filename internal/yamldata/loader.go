// Package yamldata is the YAML implementation of config.Loader. A data file
// holds two optional lists:
//
//	sources:
//	  - name: pvsim
//	    timezone: UTC-08:00
//	data:
//	  - name: irradiance
//	    value: 1000
//	    units: W/m**2
//	    meta:
//	      temperature: {value: 2, units: "%"}
//
// Numbers are normalized to float64 so both loaders produce the same model.
package yamldata

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/pvcircus/internal/circuserr"
	"github.com/vk/pvcircus/internal/config"
	"github.com/vk/pvcircus/internal/ctxlog"
	"github.com/vk/pvcircus/internal/fsutil"
	"go.yaml.in/yaml/v3"
)

type document struct {
	Sources []sourceDoc `yaml:"sources"`
	Data    []dataDoc   `yaml:"data"`
}

type sourceDoc struct {
	Name     string `yaml:"name"`
	Timezone string `yaml:"timezone"`
}

type dataDoc struct {
	Name  string         `yaml:"name"`
	Value any            `yaml:"value"`
	Units string         `yaml:"units"`
	Meta  map[string]any `yaml:"meta"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML data loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every .yaml and .yml file under paths into a single model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFilesByExtension(paths, ".yaml", ".yml")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered YAML files.", "count", len(files))

	model := &config.Model{}
	for _, file := range files {
		doc, err := parseFile(file)
		if err != nil {
			return nil, err
		}
		for _, s := range doc.Sources {
			loc, err := config.ParseTimezone(s.Timezone)
			if err != nil {
				return nil, fmt.Errorf("source %q in %s: %w", s.Name, file, err)
			}
			model.Sources = append(model.Sources, &config.Source{
				Name: s.Name, Timezone: s.Timezone, Location: loc, File: file,
			})
		}
		for _, d := range doc.Data {
			if d.Name == "" {
				return nil, circuserr.UnnamedData(file)
			}
			var meta map[string]any
			if d.Meta != nil {
				meta, _ = normalize(d.Meta).(map[string]any)
			}
			model.Entries = append(model.Entries, &config.Entry{
				Key:   d.Name,
				Value: normalize(d.Value),
				Units: d.Units,
				Meta:  meta,
				File:  file,
			})
		}
		logger.Debug("Loaded YAML data file.", "file", file, "sources", len(doc.Sources), "data", len(doc.Data))
	}
	return model, nil
}

func parseFile(path string) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	// A file may hold several "---" separated documents; their lists are
	// concatenated in file order.
	merged := &document{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	for {
		var doc document
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing data file %s: %w", path, err)
		}
		merged.Sources = append(merged.Sources, doc.Sources...)
		merged.Data = append(merged.Data, doc.Data...)
	}
	return merged, nil
}

// normalize converts YAML integers to float64 and map[any]any to
// map[string]any, recursively.
func normalize(v any) any {
	switch t := v.(type) {
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case uint64:
		return float64(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalize(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalize(val)
		}
		return out
	}
	return v
}
