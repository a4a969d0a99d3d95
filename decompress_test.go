package mrprep

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plain.txt")
	if err := os.WriteFile(path, []byte("chr\tpos\n1\t100\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	content, err := io.ReadAll(r)
	if err != nil {
		t.Error(err)
	}
	if string(content) != "chr\tpos\n1\t100\n" {
		t.Errorf("unexpected content %q", string(content))
	}
}

func TestOpenGzippedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stats.txt.gz")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte("chr\tpos\n1\t100\n")); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	content, err := io.ReadAll(r)
	if err != nil {
		t.Error(err)
	}
	if string(content) != "chr\tpos\n1\t100\n" {
		t.Errorf("decompressed content mismatch: %q", string(content))
	}
}

func TestOpenShortFile(t *testing.T) {
	// Shorter than the longest compression signature; must still open.
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.txt")
	if err := os.WriteFile(path, []byte("ab"), 0644); err != nil {
		t.Fatal(err)
	}

	r, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	content, err := io.ReadAll(r)
	if err != nil {
		t.Error(err)
	}
	if string(content) != "ab" {
		t.Errorf("unexpected content %q", string(content))
	}
}
