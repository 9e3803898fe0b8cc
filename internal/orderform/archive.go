// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package orderform

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"
)

// entryDateFormat renders the date part of an archive entry name (YYMMDD).
const entryDateFormat = "060102"

// Entry is one file inside the output archive.
type Entry struct {
	Name string
	Data []byte
}

// EntryName returns the archive entry name for a category label on the
// given day, e.g. "공통발주서_251019.xlsx".
func EntryName(label string, now time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", label, now.Format(entryDateFormat))
}

// BuildArchive zips entries in order. With no entries it returns a valid,
// empty zip archive.
func BuildArchive(entries []Entry, modified time.Time) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, e := range entries {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     e.Name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return nil, fmt.Errorf("adding %s to archive: %w", e.Name, err)
		}
		if _, err := w.Write(e.Data); err != nil {
			return nil, fmt.Errorf("writing %s to archive: %w", e.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing archive: %w", err)
	}
	return buf.Bytes(), nil
}
