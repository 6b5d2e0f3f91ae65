package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJobFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "job.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadJobFile(t *testing.T) {
	path := writeJobFile(t, `
table: sales.orders
output: orders.xlsx
sheet: Orders
headers:
  - Monthly report
  - August 2026
`)
	job, err := LoadJobFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sales.orders", job.Table)
	assert.Equal(t, "orders.xlsx", job.Output)
	assert.Equal(t, "Orders", job.Sheet)
	assert.Equal(t, []string{"Monthly report", "August 2026"}, job.Headers)
}

func TestLoadJobFileMissingTable(t *testing.T) {
	path := writeJobFile(t, "output: orders.xlsx\n")
	_, err := LoadJobFile(path)
	assert.Error(t, err)
}

func TestLoadJobFileErrors(t *testing.T) {
	_, err := LoadJobFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeJobFile(t, "table: [not\n")
	_, err = LoadJobFile(path)
	assert.Error(t, err)
}
