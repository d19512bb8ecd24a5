package zip

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
)

func TestArchiveAssets(t *testing.T) {
	archive := ArchiveAssets([]Asset{
		{Filename: "a.png", MIME: "image/png", Data: []byte("one")},
		{Filename: "b.png", MIME: "image/png", Data: []byte("two")},
	})
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(zr.File))
	}
	rc, err := zr.File[1].Open()
	if err != nil {
		t.Fatalf("open entry: %v", err)
	}
	defer rc.Close()
	data, _ := io.ReadAll(rc)
	if string(data) != "two" {
		t.Fatalf("unexpected entry contents %q", data)
	}
}

func TestArchiveAssetsDeduplicatesNames(t *testing.T) {
	archive := ArchiveAssets([]Asset{
		{Filename: "x.png", Data: []byte("1")},
		{Filename: "x.png", Data: []byte("2")},
	})
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(zr.File))
	}
	if zr.File[0].Name == zr.File[1].Name {
		t.Fatalf("duplicate entry name %q", zr.File[0].Name)
	}
}
