package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestNewFileStoreRequiresPath(t *testing.T) {
	if _, err := NewFileStore("", "http://localhost/static"); err == nil {
		t.Fatal("empty base path must fail")
	}
}

func TestWriteAndReadBack(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, "")
	if err != nil {
		t.Fatal(err)
	}

	key, err := store.Write(context.Background(), "flyers/winter-gala.png", []byte("png-bytes"))
	if err != nil {
		t.Fatal(err)
	}
	if key != "flyers/winter-gala.png" {
		t.Errorf("key = %q", key)
	}

	data, err := os.ReadFile(filepath.Join(dir, "flyers", "winter-gala.png"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("stored data = %q", data)
	}
}

func TestWriteRejectsTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), "")
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"", "   ", "../escape.png", "a/../../b.png"} {
		if _, err := store.Write(context.Background(), key, []byte("x")); err == nil {
			t.Errorf("key %q must be rejected", key)
		}
	}
}

func TestWriteNormalizesKey(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), "")
	if err != nil {
		t.Fatal(err)
	}
	key, err := store.Write(context.Background(), "./flyers//neon.png", []byte("x"))
	if err != nil {
		t.Fatal(err)
	}
	if key != "flyers/neon.png" {
		t.Errorf("key = %q, want flyers/neon.png", key)
	}
}

func TestWriteHonorsContext(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), "")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Write(ctx, "flyers/late.png", []byte("x")); err == nil {
		t.Fatal("canceled context must abort the write")
	}
}

func TestURL(t *testing.T) {
	withBase, err := NewFileStore(t.TempDir(), "http://localhost:8080/static/")
	if err != nil {
		t.Fatal(err)
	}
	if got := withBase.URL("flyers/a.png"); got != "http://localhost:8080/static/flyers/a.png" {
		t.Errorf("URL = %q", got)
	}

	bare, err := NewFileStore(t.TempDir(), "")
	if err != nil {
		t.Fatal(err)
	}
	if got := bare.URL("flyers/a.png"); got != "flyers/a.png" {
		t.Errorf("URL without base = %q", got)
	}
}
