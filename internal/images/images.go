// Package images stores the pictures attached to resources, either on the
// local filesystem or in an S3-compatible bucket.
package images

import (
	"context"
	"errors"
	"io"
	"mime"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("image not found")

// Store persists image bytes under a sanitized filename.
type Store interface {
	Save(ctx context.Context, name string, r io.Reader) error
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Delete(ctx context.Context, name string) error
}

var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
}

// Allowed reports whether the filename carries an accepted image extension.
func Allowed(filename string) bool {
	_, ok := allowedExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SecureFilename strips any directory part, turns whitespace into
// underscores and drops every character outside [A-Za-z0-9_.-]. The result
// may be empty.
func SecureFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._")
}

// UniqueName prefixes a sanitized filename with a random id so uploads that
// share a client filename never share a stored object.
func UniqueName(filename string) string {
	return uuid.NewString() + "_" + filename
}

// ContentType guesses the MIME type from the extension.
func ContentType(name string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func validName(name string) bool {
	return name != "" && SecureFilename(name) == name
}
