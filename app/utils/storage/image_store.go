package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

type ImageStore interface {
	// Save stores the upload and returns the public URL.
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
	// Delete removes an image previously returned by Save.
	Delete(ctx context.Context, url string) error
}

type LocalImageStore struct {
	dir       string
	urlPrefix string
	maxBytes  int64
}

// NewLocalImageStore writes under <root>/products and serves from /uploads/products.
func NewLocalImageStore(root string) *LocalImageStore {
	return &LocalImageStore{
		dir:       filepath.Join(root, "products"),
		urlPrefix: "/uploads/products",
		maxBytes:  5 << 20,
	}
}

func (s *LocalImageStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExt[ext] {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := uuid.New().String() + ext
	dst := filepath.Join(s.dir, name)
	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dst, err)
	}

	n, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	closeErr := f.Close()
	if err == nil && n > s.maxBytes {
		err = fmt.Errorf("image exceeds %d bytes", s.maxBytes)
	}
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(dst)
		return "", err
	}
	return path.Join(s.urlPrefix, name), nil
}

func (s *LocalImageStore) Delete(ctx context.Context, url string) error {
	name := strings.TrimPrefix(url, s.urlPrefix+"/")
	if name == url || name == "" || strings.ContainsAny(name, `/\`) || name == ".." {
		return fmt.Errorf("%q is not a stored image", url)
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", name, err)
	}
	return nil
}
