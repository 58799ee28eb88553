package cli

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/mindweave/mindweave/pkg/errors"
)

func TestReadOutline(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.md")
	if err := os.WriteFile(path, []byte("# Root\n- item"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := readOutline(path)
	if err != nil {
		t.Fatalf("readOutline: %v", err)
	}
	if text != "# Root\n- item" {
		t.Errorf("text = %q", text)
	}
}

func TestReadOutlineMissingFile(t *testing.T) {
	_, err := readOutline(filepath.Join(t.TempDir(), "absent.md"))
	if err == nil {
		t.Fatal("missing file should error")
	}
	if !apperrors.Is(err, apperrors.ErrCodeFileNotFound) {
		t.Errorf("error code = %v, want FILE_NOT_FOUND", apperrors.GetCode(err))
	}
}

func TestReadOutlineRejectsNullBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.md")
	if err := os.WriteFile(path, []byte("# Root\x00"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := readOutline(path); err == nil {
		t.Error("null bytes should be rejected")
	}
}

func TestWriteOutputCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.svg")
	if err := writeOutput(path, []byte("<svg/>")); err != nil {
		t.Fatalf("writeOutput: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "<svg/>" {
		t.Errorf("read back = %q, %v", data, err)
	}
}

func TestListOutlineFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.md", "a.markdown", "c.txt", "skip.json", "skip.go"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.md"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := listOutlineFiles(dir)
	if err != nil {
		t.Fatalf("listOutlineFiles: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("files = %v, want 3 entries", files)
	}
	// Sorted by full path
	if filepath.Base(files[0]) != "a.markdown" || filepath.Base(files[1]) != "b.md" || filepath.Base(files[2]) != "c.txt" {
		t.Errorf("unexpected order: %v", files)
	}
}
