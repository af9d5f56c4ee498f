// Package media stores uploaded images and returns their public URLs.
package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/KianJanloo/burger-cafe-back/internal/config"
)

// MaxUploadSize bounds a single multipart image upload.
const MaxUploadSize = 10 << 20

// Disk persists an object under key and returns the URL it is served from.
type Disk interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}

var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Allowed reports whether contentType is an accepted image type.
func Allowed(contentType string) bool {
	_, ok := allowedContentTypes[contentType]
	return ok
}

// ObjectKey builds a collision free key such as "menu/6f1c...e2.png".
// The client's filename only contributes its extension.
func ObjectKey(prefix, filename, contentType string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" || len(ext) > 5 {
		ext = allowedContentTypes[contentType]
	}
	return path.Join(prefix, uuid.NewString()+ext)
}

// New returns the disk selected by cfg.Disk.
func New(ctx context.Context, cfg config.MediaConfig) (Disk, error) {
	switch cfg.Disk {
	case "", "local":
		return NewLocalDisk(cfg.Root, cfg.URL), nil
	case "s3":
		return NewS3Disk(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown media disk %q", cfg.Disk)
	}
}
