// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orderform

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/orderform/pkg/types"
)

// FileTemplates maps category names to template paths on disk.
type FileTemplates map[string]string

// Open opens the template file registered for c.
func (ft FileTemplates) Open(c types.Category) (io.ReadCloser, error) {
	path, ok := ft[c.Name]
	if !ok || path == "" {
		return nil, fmt.Errorf("%w for category %q", ErrMissingTemplate, c.Name)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening template %s: %w", path, err)
	}
	return f, nil
}

// MemoryTemplates maps category names to template workbook bytes.
type MemoryTemplates map[string][]byte

// Open returns a reader over the bytes registered for c.
func (mt MemoryTemplates) Open(c types.Category) (io.ReadCloser, error) {
	data, ok := mt[c.Name]
	if !ok {
		return nil, fmt.Errorf("%w for category %q", ErrMissingTemplate, c.Name)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
