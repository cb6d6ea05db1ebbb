// Package upload validates menu images before they are persisted. The
// check is a pure function over the file header so handlers can reject a
// bad upload before writing anything to disk.
package upload

import (
	"path/filepath"
	"strings"
)

// MaxImageBytes caps uploaded menu images at 5 MiB.
const MaxImageBytes = 5 * 1024 * 1024

// allowedTypes maps accepted image content types to their canonical
// file extensions.
var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Result is the typed outcome of validating one upload.
type Result struct {
	OK      bool
	Message string // human-readable reason when not OK
	Ext     string // canonical extension for the stored file when OK
}

// Validate checks an upload's declared content type and size against the
// image allow-list and the size ceiling. filename is only consulted as a
// fallback when the content type is missing.
func Validate(filename, contentType string, size int64) Result {
	if size > MaxImageBytes {
		return Result{Message: "file too large, maximum size is 5MB"}
	}
	if size <= 0 {
		return Result{Message: "empty file"}
	}
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct == "" {
		ct = typeFromExt(filepath.Ext(filename))
	}
	ext, ok := allowedTypes[ct]
	if !ok {
		return Result{Message: "only image files can be uploaded"}
	}
	return Result{OK: true, Ext: ext}
}

func typeFromExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	}
	return ""
}
