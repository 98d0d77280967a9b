package fs_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ducflair/ducpdf"
	"github.com/ducflair/ducpdf/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		dir   string
		want  string
	}{
		{
			name:  "keeps input directory",
			input: "docs/report.pdf",
			want:  filepath.Join("docs", "report.duc"),
		},
		{
			name:  "uses output directory",
			input: "docs/report.pdf",
			dir:   "out",
			want:  filepath.Join("out", "report.duc"),
		},
		{
			name:  "input without extension",
			input: "report",
			want:  "report.duc",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, fs.OutputPath(tt.input, tt.dir))
		})
	}
}

func TestDebugPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "out/report.json", fs.DebugPath("out/report.duc"))
}

func TestWriter_WriteContainer(t *testing.T) {
	t.Parallel()

	t.Run("appends missing extension", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter()

		path, err := w.WriteContainer(filepath.Join(dir, "out"), []byte("blob"))

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "out.duc"), path)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("blob"), data)
		_, err = os.Stat(filepath.Join(dir, "out"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("keeps existing extension and creates directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter()

		path, err := w.WriteContainer(filepath.Join(dir, "nested", "out.duc"), []byte("blob"))

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "nested", "out.duc"), path)
		_, err = os.Stat(path + ".tmp")
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("does not touch a differently named file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		other := filepath.Join(dir, "out")
		require.NoError(t, os.WriteFile(other, []byte("keep"), 0644))

		_, err := fs.NewWriter().WriteContainer(other, []byte("blob"))

		require.NoError(t, err)
		data, err := os.ReadFile(other)
		require.NoError(t, err)
		assert.Equal(t, "keep", string(data))
	})
}

func TestWriter_WriteDebugJSON(t *testing.T) {
	t.Parallel()

	t.Run("writes records with ordered keys", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.json")
		records := []ducpdf.DebugRecord{
			{ID: "a", Type: "text", X: 1, Y: 2, Width: 3, Height: 4, Text: "Grüße <b>", FontSize: 5},
		}

		err := fs.NewWriter().WriteDebugJSON(path, records)

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		out := string(data)
		assert.Contains(t, out, "Grüße <b>")
		assert.Contains(t, out, "\n  {\n    \"id\": \"a\"")

		keys := []string{`"id":`, `"type":`, `"x":`, `"y":`, `"width":`, `"height":`, `"text":`, `"font_size":`}
		last := -1
		for _, k := range keys {
			idx := strings.Index(out, k)
			require.Greater(t, idx, last, k)
			last = idx
		}

		var decoded []map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.Len(t, decoded, 1)
		assert.Len(t, decoded[0], 8)
	})

	t.Run("writes empty array for no records", func(t *testing.T) {
		t.Parallel()

		data, err := fs.FormatDebugJSON(nil)

		require.NoError(t, err)
		assert.Equal(t, "[]\n", string(data))
	})
}
