package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalImageStoreSave(t *testing.T) {
	root := t.TempDir()
	store := NewLocalImageStore(root)

	url, err := store.Save(context.Background(), "Photo.PNG", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/products/") || !strings.HasSuffix(url, ".png") {
		t.Fatalf("unexpected url %q", url)
	}

	data, err := os.ReadFile(filepath.Join(root, "products", filepath.Base(url)))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestLocalImageStoreRejects(t *testing.T) {
	store := NewLocalImageStore(t.TempDir())
	if _, err := store.Save(context.Background(), "script.exe", strings.NewReader("x")); err == nil {
		t.Fatal("expected extension rejection")
	}

	store.maxBytes = 4
	if _, err := store.Save(context.Background(), "big.jpg", strings.NewReader("123456")); err == nil {
		t.Fatal("expected size rejection")
	}
	entries, _ := os.ReadDir(store.dir)
	if len(entries) != 0 {
		t.Fatalf("oversized upload left %d files behind", len(entries))
	}
}

func TestLocalImageStoreDelete(t *testing.T) {
	store := NewLocalImageStore(t.TempDir())
	ctx := context.Background()

	url, err := store.Save(ctx, "a.jpg", strings.NewReader("jpg"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Delete(ctx, url); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if entries, _ := os.ReadDir(store.dir); len(entries) != 0 {
		t.Fatalf("%d files left after delete", len(entries))
	}
	if err := store.Delete(ctx, url); err != nil {
		t.Errorf("second delete: %v", err)
	}

	for _, bad := range []string{"/etc/passwd", "/uploads/products/../secret", "/uploads/products/", "/uploads/products/a/b.jpg"} {
		if err := store.Delete(ctx, bad); err == nil {
			t.Errorf("Delete(%q) should be rejected", bad)
		}
	}
}
