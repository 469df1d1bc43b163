package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const solutions = `initialization centroids,distortion,centroids,clusters
"[(1,), (2,)]",2,"[(1,), (10,)]","[[(1,), (2,)], [(10,), (11,)]]"
"[(1,), (10,)]",2,"[(1,), (10,)]","[[(1,), (2,)], [(10,), (11,)]]"
`

func writeCSV(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	a := writeCSV(t, dir, "a.csv", solutions)
	b := writeCSV(t, dir, "b.csv", solutions)
	bad := writeCSV(t, dir, "bad.csv", strings.Replace(solutions, `"[(1,), (2,)]",2,`, `"[(1,), (2,)]",7,`, 1))

	t.Run("Match", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), []string{a, b}, &stdout, &stderr)
		assert.Equal(t, 0, code, stderr.String())
		assert.Equal(t, "Success !\n", stdout.String())
	})

	t.Run("Mismatch", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), []string{a, bad}, &stdout, &stderr)
		assert.Equal(t, 1, code)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), `both "distortion" values`)
	})

	t.Run("MissingFile", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), []string{a, filepath.Join(dir, "nope.csv")}, &stdout, &stderr)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "nope.csv")
	})

	t.Run("MissingArgument", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run(context.Background(), []string{a}, &stdout, &stderr)
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr.String(), "CSV_2")
	})
}
