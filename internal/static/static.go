// Package static resolves request paths to files under a public directory.
package static

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	apperrors "sessionauth/internal/errors"
)

const indexFile = "index.html"

var extContentTypes = map[string]string{
	".html": "text/html",
	".js":   "text/javascript",
	".css":  "text/css",
}

// File is a resolved static asset.
type File struct {
	Content     []byte
	ContentType string
}

// Dir serves files from a root directory.
type Dir struct {
	root string
}

// NewDir creates a resolver rooted at root.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Open reads the file behind urlPath. "/" maps to index.html. Paths that
// are missing, are directories or escape the root return ErrFileNotFound.
func (d *Dir) Open(urlPath string) (*File, error) {
	if urlPath == "" || urlPath == "/" {
		urlPath = indexFile
	}

	fullPath, err := d.resolve(urlPath)
	if err != nil {
		return nil, apperrors.ErrFileNotFound
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || isDirErr(fullPath) {
			return nil, apperrors.ErrFileNotFound
		}
		return nil, fmt.Errorf("read %s: %w", urlPath, err)
	}

	return &File{Content: content, ContentType: contentType(fullPath, content)}, nil
}

func (d *Dir) resolve(urlPath string) (string, error) {
	urlPath = strings.ReplaceAll(urlPath, "\x00", "")

	absBase, err := filepath.Abs(d.root)
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}
	absPath, err := filepath.Abs(filepath.Join(absBase, filepath.FromSlash(urlPath)))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	if absPath != absBase && !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal detected: %s not under %s", absPath, absBase)
	}
	return absPath, nil
}

func isDirErr(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func contentType(path string, content []byte) string {
	if ct, ok := extContentTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return ct
	}
	return mimetype.Detect(content).String()
}
