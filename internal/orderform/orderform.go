// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package orderform turns a delivery list into per-category order forms.
// Rows are partitioned by product-name keywords, projected into a fixed
// column layout, written into caller-supplied template workbooks and
// packed into a zip archive.
package orderform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/orderform/internal/deliverylist"
	"github.com/pdiddy/orderform/pkg/types"
)

var (
	// ErrNoMatchingRows is returned when RejectEmpty is set and no delivery
	// row matches any category.
	ErrNoMatchingRows = errors.New("no matching rows")

	// ErrMissingTemplate is returned when a category has rows but no
	// template workbook was supplied for it.
	ErrMissingTemplate = errors.New("missing template")
)

// TemplateSource supplies the template workbook for a category. Open is
// only called for categories that have at least one matching row.
type TemplateSource interface {
	Open(c types.Category) (io.ReadCloser, error)
}

// Converter runs the delivery-list to order-form pipeline. It holds no
// per-request state and may be shared between goroutines.
type Converter struct {
	cfg types.ConversionConfig

	// Now returns the time used for entry names. Defaults to time.Now.
	Now func() time.Time

	// Log receives one status line per category. Defaults to io.Discard.
	Log io.Writer
}

// NewConverter checks cfg and returns a Converter for it.
func NewConverter(cfg types.ConversionConfig) (*Converter, error) {
	if cfg.Layout == "" {
		cfg.Layout = types.LayoutRecipient
	}
	if !cfg.Layout.Valid() {
		return nil, fmt.Errorf("unknown layout %q: use %s or %s", cfg.Layout, types.LayoutRecipient, types.LayoutOrder)
	}
	if len(cfg.Categories) == 0 {
		return nil, fmt.Errorf("no categories configured")
	}

	names := make(map[string]struct{}, len(cfg.Categories))
	for _, c := range cfg.Categories {
		if c.Name == "" || c.Label == "" || c.TemplateField == "" {
			return nil, fmt.Errorf("category %q: name, label and template_field are required", c.Name)
		}
		if _, dup := names[c.Name]; dup {
			return nil, fmt.Errorf("duplicate category %q", c.Name)
		}
		names[c.Name] = struct{}{}
		if len(c.Keywords) == 0 {
			return nil, fmt.Errorf("category %q has no keywords", c.Name)
		}
		for _, kw := range c.Keywords {
			if kw == "" {
				return nil, fmt.Errorf("category %q has an empty keyword", c.Name)
			}
		}
	}

	return &Converter{
		cfg: cfg,
		Now: time.Now,
		Log: io.Discard,
	}, nil
}

// Config returns the configuration the converter was built with.
func (c *Converter) Config() types.ConversionConfig {
	return c.cfg
}

// CategorySummary reports the outcome for one category.
type CategorySummary struct {
	Name  string `json:"name" yaml:"name"`
	Rows  int    `json:"rows" yaml:"rows"`
	Entry string `json:"entry,omitempty" yaml:"entry,omitempty"`
}

// Summary describes one conversion run.
type Summary struct {
	Records     int               `json:"records" yaml:"records"`
	Unmatched   int               `json:"unmatched" yaml:"unmatched"`
	Layout      types.Layout      `json:"layout" yaml:"layout"`
	Categories  []CategorySummary `json:"categories" yaml:"categories"`
	GeneratedAt time.Time         `json:"generated_at" yaml:"generated_at"`
}

// Entries returns the names of the archive entries that were produced.
func (s Summary) Entries() []string {
	var names []string
	for _, c := range s.Categories {
		if c.Entry != "" {
			names = append(names, c.Entry)
		}
	}
	return names
}

// WriteYAML encodes the summary as YAML to w.
func (s Summary) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	return enc.Close()
}

// Result is the output of a conversion.
type Result struct {
	Archive []byte
	Summary Summary
}

// Convert reads the delivery list, writes one workbook per category that
// has matching rows and returns them zipped. A missing required column
// fails with *deliverylist.MissingColumnsError before any template is read.
func (c *Converter) Convert(ctx context.Context, delivery io.Reader, templates TemplateSource) (*Result, error) {
	records, err := deliverylist.Read(delivery)
	if err != nil {
		return nil, err
	}

	now := c.Now()
	subsets := Partition(records, c.cfg.Categories)
	summary := Summary{
		Records:     len(records),
		Unmatched:   countUnmatched(records, c.cfg.Categories),
		Layout:      c.cfg.Layout,
		GeneratedAt: now,
	}

	var entries []Entry
	for i, cat := range c.cfg.Categories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		subset := subsets[i]
		cs := CategorySummary{Name: cat.Name, Rows: len(subset)}
		if len(subset) == 0 {
			fmt.Fprintf(c.Log, "skipped: %s (no matching rows)\n", cat.Name)
			summary.Categories = append(summary.Categories, cs)
			continue
		}

		data, err := c.writeCategory(cat, subset, templates)
		if err != nil {
			fmt.Fprintf(c.Log, "failed:  %s (%v)\n", cat.Name, err)
			return nil, err
		}

		cs.Entry = EntryName(cat.Label, now)
		entries = append(entries, Entry{Name: cs.Entry, Data: data})
		summary.Categories = append(summary.Categories, cs)
		fmt.Fprintf(c.Log, "written: %s (%d rows)\n", cs.Entry, cs.Rows)
	}

	if len(entries) == 0 && c.cfg.RejectEmpty {
		return nil, ErrNoMatchingRows
	}

	archive, err := BuildArchive(entries, now)
	if err != nil {
		return nil, err
	}
	return &Result{Archive: archive, Summary: summary}, nil
}

func (c *Converter) writeCategory(cat types.Category, subset []types.DeliveryRecord, templates TemplateSource) ([]byte, error) {
	rows, err := MapRecords(subset, c.cfg.Layout)
	if err != nil {
		return nil, err
	}

	if templates == nil {
		return nil, fmt.Errorf("%w for category %q", ErrMissingTemplate, cat.Name)
	}
	rc, err := templates.Open(cat)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := WriteTemplate(rc, rows)
	if err != nil {
		return nil, fmt.Errorf("category %q: %w", cat.Name, err)
	}
	return data, nil
}
