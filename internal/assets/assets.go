// Package assets lists and serves the static files (crests, logos) the map
// page references, filtered by glob patterns.
package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DefaultMaxFileSize caps the size of a served asset (4 MB).
const DefaultMaxFileSize int64 = 4 << 20

// File describes one asset on disk.
type File struct {
	Path        string // absolute path
	RelPath     string // slash-separated, relative to the root
	Size        int64
	ContentType string
	ETag        string // quoted SHA-256 of the content
}

// Config controls Walk and Handler.
type Config struct {
	RootDir     string
	Include     []string // empty means DefaultInclude
	Exclude     []string
	MaxFileSize int64 // 0 means DefaultMaxFileSize
}

func (c Config) include() []string {
	if len(c.Include) == 0 {
		return DefaultInclude
	}
	return c.Include
}

func (c Config) maxSize() int64 {
	if c.MaxFileSize <= 0 {
		return DefaultMaxFileSize
	}
	return c.MaxFileSize
}

// Walk returns every allowed asset under cfg.RootDir. A missing root yields
// no files and no error.
func Walk(cfg Config) ([]File, error) {
	root, err := filepath.Abs(cfg.RootDir)
	if err != nil {
		return nil, fmt.Errorf("assets: resolve root: %w", err)
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var files []File
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			if p != root && skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil || !Allowed(rel, cfg.include(), cfg.Exclude) {
			return nil
		}
		f, err := describe(p, rel, cfg.maxSize())
		if err != nil {
			return nil
		}
		files = append(files, f)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("assets: traversal: %w", err)
	}
	return files, nil
}

func describe(abs, rel string, maxSize int64) (File, error) {
	info, err := os.Stat(abs)
	if err != nil {
		return File{}, err
	}
	if info.Size() > maxSize {
		return File{}, fmt.Errorf("%s: %d bytes exceeds limit", rel, info.Size())
	}
	hash, err := hashFile(abs)
	if err != nil {
		return File{}, err
	}
	return File{
		Path:        abs,
		RelPath:     filepath.ToSlash(rel),
		Size:        info.Size(),
		ContentType: ContentType(abs),
		ETag:        `"` + hash + `"`,
	}, nil
}

// ContentType guesses a MIME type from the file extension.
func ContentType(name string) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

func hashFile(p string) (string, error) {
	f, err := os.Open(p)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Handler serves allowed assets from cfg.RootDir. The request path is taken
// relative to the mount point, so mount it with http.StripPrefix. Anything
// outside the filter answers 404.
func Handler(cfg Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rel := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")
		if !Allowed(rel, cfg.include(), cfg.Exclude) {
			http.NotFound(w, r)
			return
		}
		abs := filepath.Join(cfg.RootDir, filepath.FromSlash(rel))
		f, err := describe(abs, rel, cfg.maxSize())
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", f.ContentType)
		w.Header().Set("ETag", f.ETag)
		http.ServeFile(w, r, abs)
	})
}

// Copy writes every allowed asset under cfg.RootDir into dst, keeping the
// relative layout. It returns the copied files.
func Copy(cfg Config, dst string) ([]File, error) {
	files, err := Walk(cfg)
	if err != nil {
		return nil, err
	}
	for _, f := range files {
		target := filepath.Join(dst, filepath.FromSlash(f.RelPath))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return nil, fmt.Errorf("assets: %w", err)
		}
		if err := copyFile(f.Path, target); err != nil {
			return nil, fmt.Errorf("assets: copying %s: %w", f.RelPath, err)
		}
	}
	return files, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
