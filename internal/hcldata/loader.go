package hcldata

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/pvcircus/internal/circuserr"
	"github.com/vk/pvcircus/internal/config"
	"github.com/vk/pvcircus/internal/ctxlog"
	"github.com/vk/pvcircus/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL data loader.
func NewLoader() *Loader {
	return &Loader{}
}

// fileRoot decodes all top-level blocks of a data file. Any other block or
// attribute is rejected by gohcl.
type fileRoot struct {
	Sources []*sourceBlock `hcl:"source,block"`
	Data    []*dataBlock   `hcl:"data,block"`
}

type sourceBlock struct {
	Name     string `hcl:"name,label"`
	Timezone string `hcl:"timezone,optional"`
}

type dataBlock struct {
	Name  string         `hcl:"name,label"`
	Value hcl.Expression `hcl:"value,optional"`
	Units string         `hcl:"units,optional"`
	Meta  hcl.Expression `hcl:"meta,optional"`
}

// Load parses every .hcl file under paths into a single model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(paths, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := &config.Model{}
	parser := hclparse.NewParser()

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, src := range root.Sources {
			s, err := translateSource(src, file)
			if err != nil {
				return nil, err
			}
			model.Sources = append(model.Sources, s)
		}
		for _, d := range root.Data {
			e, err := translateData(d, file)
			if err != nil {
				return nil, err
			}
			model.Entries = append(model.Entries, e)
		}
		logger.Debug("Loaded HCL data file.", "file", file, "sources", len(root.Sources), "data", len(root.Data))
	}

	logger.Debug("HCL loading complete.", "sources", len(model.Sources), "entries", len(model.Entries))
	return model, nil
}

func translateSource(b *sourceBlock, file string) (*config.Source, error) {
	loc, err := config.ParseTimezone(b.Timezone)
	if err != nil {
		return nil, fmt.Errorf("source %q in %s: %w", b.Name, file, err)
	}
	return &config.Source{Name: b.Name, Timezone: b.Timezone, Location: loc, File: file}, nil
}

func translateData(b *dataBlock, file string) (*config.Entry, error) {
	if b.Name == "" {
		return nil, circuserr.UnnamedData(file)
	}

	entry := &config.Entry{Key: b.Name, Units: b.Units, File: file}

	if b.Value != nil {
		val, diags := b.Value.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid value for data %q in %s: %w", b.Name, file, diags)
		}
		native, err := ctyToNative(val)
		if err != nil {
			return nil, fmt.Errorf("data %q in %s: %w", b.Name, file, err)
		}
		entry.Value = native
	}

	if b.Meta != nil {
		val, diags := b.Meta.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid meta for data %q in %s: %w", b.Name, file, diags)
		}
		meta, err := ctyToMeta(val)
		if err != nil {
			return nil, fmt.Errorf("data %q in %s: %w", b.Name, file, err)
		}
		entry.Meta = meta
	}

	return entry, nil
}
