// Package assets finds and copies the photographs, video and other static
// files published alongside the rendered pages.
package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultMaxFileSize is the largest asset copied (512 MB).
const DefaultMaxFileSize int64 = 512 << 20

// File is one publishable asset.
type File struct {
	Path        string // absolute path on disk
	RelPath     string // slash-separated, relative to the assets root
	Size        int64
	Media       Media
	ContentHash string // sha256, hex
}

// Config selects the assets under RootDir.
type Config struct {
	RootDir     string
	Include     []string
	Exclude     []string
	MaxFileSize int64 // 0 means DefaultMaxFileSize
}

// Walk lists the assets under config.RootDir in lexical order. Ignored names
// prune whole subtrees; unreadable entries below the root are skipped.
func Walk(config Config) ([]File, error) {
	filter, err := NewFilter(config.Include, config.Exclude)
	if err != nil {
		return nil, err
	}
	root, err := filepath.Abs(config.RootDir)
	if err != nil {
		return nil, fmt.Errorf("resolving assets root: %w", err)
	}
	limit := config.MaxFileSize
	if limit <= 0 {
		limit = DefaultMaxFileSize
	}

	var files []File
	visit := func(p string, d fs.DirEntry, err error) error {
		switch {
		case err != nil && p == root:
			return err
		case err != nil:
			return nil
		case ignored(d.Name()) && d.IsDir():
			return filepath.SkipDir
		case ignored(d.Name()) || !d.Type().IsRegular():
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil || !filter.Match(rel) {
			return nil
		}
		f, ok := describe(p, rel, d, limit)
		if ok {
			files = append(files, f)
		}
		return nil
	}
	if err := filepath.WalkDir(root, visit); err != nil {
		return nil, fmt.Errorf("walking assets %s: %w", root, err)
	}
	return files, nil
}

// describe stats and hashes one file. ok is false for files over limit or
// files that cannot be read.
func describe(p, rel string, d fs.DirEntry, limit int64) (File, bool) {
	info, err := d.Info()
	if err != nil || info.Size() > limit {
		return File{}, false
	}
	sum, err := hashFile(p)
	if err != nil {
		return File{}, false
	}
	return File{
		Path:        p,
		RelPath:     filepath.ToSlash(rel),
		Size:        info.Size(),
		Media:       DetectMedia(d.Name()),
		ContentHash: sum,
	}, true
}

// Copy copies files into destDir, preserving their relative paths. Files
// whose destination already has the same content are left alone. It
// returns the number of files written.
func Copy(files []File, destDir string) (int, error) {
	written := 0
	for _, f := range files {
		dst := filepath.Join(destDir, filepath.FromSlash(f.RelPath))
		if hash, err := hashFile(dst); err == nil && hash == f.ContentHash {
			continue
		}
		if err := copyFile(f.Path, dst); err != nil {
			return written, fmt.Errorf("copying asset %s: %w", f.RelPath, err)
		}
		written++
	}
	return written, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
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

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
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
