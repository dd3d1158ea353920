package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shapepad/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTextFileService() *TextFileService {
	return NewTextFileService(".txt", logger.NewNop())
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	ts := newTextFileService()
	ctx := context.Background()
	text := "first line\n  indented ünïcode\n\nlast line\n"

	path := filepath.Join(t.TempDir(), "notes")
	final, err := ts.SaveFile(ctx, path, text)
	require.NoError(t, err)
	assert.Equal(t, path+".txt", final)

	loaded, err := ts.LoadFile(ctx, final)
	require.NoError(t, err)
	assert.Equal(t, text, loaded)
}

func TestSaveKeepsExistingExtension(t *testing.T) {
	ts := newTextFileService()
	path := filepath.Join(t.TempDir(), "Notes.TXT")

	final, err := ts.SaveFile(context.Background(), path, "x\n")
	require.NoError(t, err)
	assert.Equal(t, path, final)
}

func TestSaveRemovesEmptyPlaceholder(t *testing.T) {
	ts := newTextFileService()
	path := filepath.Join(t.TempDir(), "draft")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	final, err := ts.SaveFile(context.Background(), path, "body\n")
	require.NoError(t, err)
	assert.Equal(t, path+".txt", final)
	assert.NoFileExists(t, path)
	assert.FileExists(t, final)
}

func TestSaveLeavesNonEmptyOriginal(t *testing.T) {
	ts := newTextFileService()
	path := filepath.Join(t.TempDir(), "README")
	require.NoError(t, os.WriteFile(path, []byte("keep me"), 0o644))

	_, err := ts.SaveFile(context.Background(), path, "body\n")
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestReadTextTerminatesLastLine(t *testing.T) {
	ts := newTextFileService()
	text, err := ts.ReadText(context.Background(), strings.NewReader("a\r\nb"))
	require.NoError(t, err)
	assert.Equal(t, "a\r\nb\n", text)

	empty, err := ts.ReadText(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestReadTextHonoursCancellation(t *testing.T) {
	ts := newTextFileService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ts.ReadText(ctx, strings.NewReader("a\n"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadMissingFile(t *testing.T) {
	ts := newTextFileService()
	_, err := ts.LoadFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnsureExtension(t *testing.T) {
	ts := newTextFileService()
	assert.Equal(t, "a.txt", ts.EnsureExtension("a"))
	assert.Equal(t, "a.txt", ts.EnsureExtension("a.txt"))
	assert.Equal(t, "a.Txt", ts.EnsureExtension("a.Txt"))
	assert.Equal(t, "a.md.txt", ts.EnsureExtension("a.md"))
}
