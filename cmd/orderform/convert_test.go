// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/orderform/internal/testsupport"
	"github.com/pdiddy/orderform/pkg/types"
)

func writeTemp(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestConvertFiles(t *testing.T) {
	dir := t.TempDir()
	delivery := writeTemp(t, dir, "DeliveryList.xlsx", testsupport.Workbook(t,
		testsupport.DeliveryHeader,
		testsupport.DeliveryRow("1", "홍길동", "010-1", "37300", "신틸라", "4kg", "1"),
		testsupport.DeliveryRow("2", "김철수", "010-2", "37301", "사과", "5kg", "2"),
	))
	common := writeTemp(t, dir, "common.xlsx", testsupport.Template(t, "Sheet1", testsupport.RecipientHeader))
	out := filepath.Join(dir, "out.zip")

	var log bytes.Buffer
	res, err := convertFiles(context.Background(), types.DefaultConfig().Conversion, delivery,
		map[string]string{"common": common}, out, &log)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Summary.Records)
	assert.Equal(t, 1, res.Summary.Unmatched)
	assert.Contains(t, log.String(), "written: 공통발주서_")
	assert.Contains(t, log.String(), "skipped: uiseong")
	assert.Contains(t, log.String(), "Archive: "+out)

	zr, err := zip.OpenReader(out)
	require.NoError(t, err)
	defer zr.Close()
	assert.Len(t, zr.File, 1)
}

func TestConvertFiles_MissingTemplate(t *testing.T) {
	dir := t.TempDir()
	delivery := writeTemp(t, dir, "DeliveryList.xlsx", testsupport.Workbook(t,
		testsupport.DeliveryHeader,
		testsupport.DeliveryRow("1", "홍길동", "010-1", "37300", "의성프리미엄신비복숭아", "4kg", "1"),
	))
	out := filepath.Join(dir, "out.zip")

	var log bytes.Buffer
	_, err := convertFiles(context.Background(), types.DefaultConfig().Conversion, delivery, nil, out, &log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing template")
	assert.NoFileExists(t, out)
}

func TestConvertFiles_MissingDelivery(t *testing.T) {
	dir := t.TempDir()
	_, err := convertFiles(context.Background(), types.DefaultConfig().Conversion,
		filepath.Join(dir, "nope.xlsx"), nil, filepath.Join(dir, "out.zip"), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening delivery list")
}
