package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"shapepad/internal/logger"
)

// TextFileService reads and writes the editor buffer as plain text
type TextFileService struct {
	extension string
	logger    logger.Logger
}

// NewTextFileService creates a service that appends extension on save when missing
func NewTextFileService(extension string, log logger.Logger) *TextFileService {
	return &TextFileService{
		extension: extension,
		logger:    log,
	}
}

// ReadText reads r line by line, terminating every line with "\n".
// Line contents, including any "\r", are kept verbatim.
func (ts *TextFileService) ReadText(ctx context.Context, r io.Reader) (string, error) {
	reader := bufio.NewReader(r)
	var content strings.Builder

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			content.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				content.WriteByte('\n')
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read text: %w", err)
		}
	}

	return content.String(), nil
}

// WriteText writes text verbatim
func (ts *TextFileService) WriteText(ctx context.Context, w io.Writer, text string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(text); err != nil {
		return fmt.Errorf("failed to write text: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush text: %w", err)
	}
	return nil
}

// EnsureExtension appends the default extension unless path already ends with it
func (ts *TextFileService) EnsureExtension(path string) string {
	if strings.HasSuffix(strings.ToLower(path), strings.ToLower(ts.extension)) {
		return path
	}
	return path + ts.extension
}

// LoadFile reads the whole file at path
func (ts *TextFileService) LoadFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	text, err := ts.ReadText(ctx, f)
	if err != nil {
		return "", err
	}

	ts.logger.Debug("TextFileService", "file loaded", map[string]interface{}{
		"path":  path,
		"bytes": len(text),
	})
	return text, nil
}

// SaveFile writes text to path, appending the default extension when it is
// missing, and returns the path actually written. When the extension is
// appended, an empty file left at the original path by the save dialog is removed.
func (ts *TextFileService) SaveFile(ctx context.Context, path, text string) (string, error) {
	finalPath := ts.EnsureExtension(path)

	f, err := os.Create(finalPath)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", finalPath, err)
	}
	if err := ts.WriteText(ctx, f, text); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", finalPath, err)
	}

	if finalPath != path {
		ts.removeIfEmpty(path)
	}

	ts.logger.Info("TextFileService", "file saved", map[string]interface{}{
		"path":  finalPath,
		"bytes": len(text),
	})
	return finalPath, nil
}

func (ts *TextFileService) removeIfEmpty(path string) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() || info.Size() != 0 {
		return
	}
	if err := os.Remove(path); err != nil {
		ts.logger.Warning("TextFileService", "could not remove placeholder file", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}
}
