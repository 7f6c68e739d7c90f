package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeFilename(t *testing.T) {
	cases := map[string]string{
		"minutes.pdf":          "minutes.pdf",
		"March Minutes.pdf":    "MarchMinutes.pdf",
		"../../etc/passwd":     "passwd",
		"logo (1).png":         "logo1.png",
		"résumé.doc":           "rsum.doc",
		"":                     "file",
		"...":                  "...",
		"report-2026-03-01.md": "report-2026-03-01.md",
	}
	for input, want := range cases {
		assert.Equal(t, want, SafeFilename(input), "input %q", input)
	}
}

func TestLocalStorePut(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "")
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "minutes/123-minutes.pdf", strings.NewReader("%PDF-1.4"), 8, "application/pdf")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/minutes/123-minutes.pdf", url)

	raw, err := os.ReadFile(filepath.Join(dir, "minutes", "123-minutes.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(raw))
}

func TestLocalStorePutWithBaseURL(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "https://pac.example.com")
	require.NoError(t, err)

	url, err := store.Put(context.Background(), "logos/logo.png", strings.NewReader("png"), 3, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://pac.example.com/uploads/logos/logo.png", url)
}

func TestLocalStoreDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, "")
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "minutes/doc.pdf", strings.NewReader("x"), 1, "application/pdf")
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), "minutes/doc.pdf"))
	_, err = os.Stat(filepath.Join(dir, "minutes", "doc.pdf"))
	assert.True(t, os.IsNotExist(err))
}
