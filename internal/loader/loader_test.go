package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "water.txt", "Drinking water supports weight loss.")

	doc, err := New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "water.txt", doc.SourceID)
	assert.Equal(t, "Drinking water supports weight loss.", doc.Text)
	assert.Equal(t, "txt", doc.Format)
}

func TestLoad_Markdown(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "guide.md", "## Tips\n\nEat more vegetables.")

	doc, err := New().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "guide.md", doc.SourceID)
	assert.Equal(t, "md", doc.Format)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "image.png", "\x89PNG not text")

	_, err := New().Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestLoad_CorruptPDFIsNotUnsupported(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.pdf", "this is not a pdf")

	_, err := New().Load(path)
	require.Error(t, err)
	// A corrupt file in a supported format is a load error, not an
	// unsupported format.
	assert.NotErrorIs(t, err, ErrUnsupported)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := New().Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestLoadDir_SkipsFailuresAndReports(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "alpha")
	writeFile(t, dir, "b.txt", "bravo")
	writeFile(t, dir, "bad.bin", "\x00\x01\x02")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	docs, failures := New().LoadDir(dir)

	require.Len(t, docs, 2)
	names := []string{docs[0].SourceID, docs[1].SourceID}
	assert.ElementsMatch(t, []string{"a.txt", "b.txt"}, names)

	require.Len(t, failures, 1)
	assert.Equal(t, "bad.bin", failures[0].Name)
	assert.ErrorIs(t, failures[0].Err, ErrUnsupported)
}

func TestLoadDir_MissingDirIsEmpty(t *testing.T) {
	docs, failures := New().LoadDir(filepath.Join(t.TempDir(), "nope"))
	assert.Empty(t, docs)
	assert.Empty(t, failures)
}

func TestTextExtractor_RejectsOtherExtensions(t *testing.T) {
	_, err := TextExtractor{}.Extract("whatever.docx")
	assert.ErrorIs(t, err, ErrUnsupported)
}
