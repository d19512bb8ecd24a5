package storage

import (
	"context"
	"testing"
)

func TestFileStoreWriteRead(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), "/assets")
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	key, err := store.Write(context.Background(), "sessions/abc/result-0.png", []byte("image-bytes"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if key != "sessions/abc/result-0.png" {
		t.Fatalf("key = %q", key)
	}

	data, err := store.Read(context.Background(), key)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != "image-bytes" {
		t.Fatalf("data = %q", data)
	}

	if got := store.URL(key); got != "/assets/sessions/abc/result-0.png" {
		t.Fatalf("URL = %q", got)
	}
}

func TestFileStoreRejectsTraversal(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), "/assets")
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := store.Write(context.Background(), "../escape.png", []byte("x")); err == nil {
		t.Fatal("expected traversal key to be rejected")
	}
	if _, err := store.Read(context.Background(), "../../etc/passwd"); err == nil {
		t.Fatal("expected traversal read to be rejected")
	}
}

func TestExtensionForMIME(t *testing.T) {
	cases := map[string]string{
		"image/png":  ".png",
		"image/jpeg": ".jpg",
		"IMAGE/WEBP": ".webp",
		"text/plain": ".bin",
	}
	for mime, want := range cases {
		if got := ExtensionForMIME(mime); got != want {
			t.Errorf("ExtensionForMIME(%q) = %q, want %q", mime, got, want)
		}
	}
}
