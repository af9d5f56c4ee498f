package media

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalDisk writes uploads below Root and serves them under URL.
type LocalDisk struct {
	Root string
	URL  string
}

func NewLocalDisk(root, url string) *LocalDisk {
	if url == "" {
		url = "/uploads"
	}
	return &LocalDisk{Root: root, URL: strings.TrimRight(url, "/")}
}

func (d *LocalDisk) Put(_ context.Context, key string, r io.Reader, _ string) (string, error) {
	clean := path.Clean("/" + key)[1:]
	if clean == "" || clean != key {
		return "", fmt.Errorf("invalid media key %q", key)
	}

	full := filepath.Join(d.Root, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	f, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", key, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", key, err)
	}
	return d.URL + "/" + clean, nil
}

// Handler serves the stored files; mount it at d.URL.
func (d *LocalDisk) Handler() http.Handler {
	return http.StripPrefix(d.URL, http.FileServer(http.Dir(d.Root)))
}
