package safeio

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestPolicyFor(t *testing.T) {
	if PolicyFor(true) != Overwrite {
		t.Error("PolicyFor(true) should be Overwrite")
	}
	if PolicyFor(false) != NoClobber {
		t.Error("PolicyFor(false) should be NoClobber")
	}
	if NoClobber.String() != "no-clobber" || Overwrite.String() != "overwrite" {
		t.Errorf("unexpected Policy strings %q %q", NoClobber, Overwrite)
	}
}

func TestWriteFileCreatesParents(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "a", "b", "out.bin")

	// Act
	err := WriteFile(path, []byte("data"), NoClobber, PublicFile)

	// Assert
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(got) != "data" {
		t.Errorf("content = %q, want %q", got, "data")
	}
}

func TestWriteFileRefusesExisting(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "existing")
	if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	// Act
	err := WriteFile(path, []byte("replacement"), NoClobber, PublicFile)

	// Assert
	var ro *RefusedOverwriteError
	if !errors.As(err, &ro) {
		t.Fatalf("error = %v, want *RefusedOverwriteError", err)
	}
	if ro.Path != path {
		t.Errorf("Path = %q, want %q", ro.Path, path)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "original" {
		t.Errorf("existing file modified: %q", got)
	}
	assertNoTempFiles(t, filepath.Dir(path))
}

func TestWriteFileOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "existing")
	if err := os.WriteFile(path, []byte("original"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if err := WriteFile(path, []byte("replacement"), Overwrite, PublicFile); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, _ := os.ReadFile(path)
	if string(got) != "replacement" {
		t.Errorf("content = %q, want %q", got, "replacement")
	}
	assertNoTempFiles(t, filepath.Dir(path))
}

func TestWriteFileRefusesDirectory(t *testing.T) {
	dir := t.TempDir()

	err := WriteFile(dir, []byte("x"), Overwrite, PublicFile)
	if err == nil || !strings.Contains(err.Error(), "is a directory") {
		t.Errorf("error = %v, want directory error", err)
	}
}

func TestWriteFilePrivatePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX permissions only")
	}

	tests := []struct {
		name     string
		policy   Policy
		existing bool
	}{
		{"new file", NoClobber, false},
		{"replaced world-readable file", Overwrite, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "secret.key")
			if tt.existing {
				if err := os.WriteFile(path, []byte("old"), 0666); err != nil {
					t.Fatalf("setup: %v", err)
				}
				if err := os.Chmod(path, 0666); err != nil {
					t.Fatalf("setup chmod: %v", err)
				}
			}

			if err := WriteFile(path, []byte("secret"), tt.policy, PrivateFile); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("stat: %v", err)
			}
			if perm := info.Mode().Perm(); perm != 0600 {
				t.Errorf("mode = %o, want 600", perm)
			}
		})
	}
}

func TestCheckWritable(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "existing")
	if err := os.WriteFile(existing, nil, 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	missing := filepath.Join(dir, "missing")

	tests := []struct {
		name    string
		path    string
		policy  Policy
		refused bool
	}{
		{"missing no-clobber", missing, NoClobber, false},
		{"missing overwrite", missing, Overwrite, false},
		{"existing no-clobber", existing, NoClobber, true},
		{"existing overwrite", existing, Overwrite, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckWritable(tt.path, tt.policy)
			if got := IsRefusedOverwrite(err); got != tt.refused {
				t.Errorf("IsRefusedOverwrite(%v) = %v, want %v", err, got, tt.refused)
			}
			if !tt.refused && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in")
	if err := os.WriteFile(path, []byte("payload"), 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "payload" {
		t.Errorf("ReadFile() = %q, want %q", got, "payload")
	}

	_, err = ReadFile(filepath.Join(dir, "nope"))
	if !IsNotFound(err) {
		t.Errorf("error = %v, want NotFoundError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Error("NotFoundError should unwrap to os.ErrNotExist")
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")

	ok, err := Exists(path)
	if err != nil || ok {
		t.Fatalf("Exists(missing) = %v, %v", ok, err)
	}

	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	ok, err = Exists(path)
	if err != nil || !ok {
		t.Errorf("Exists(existing) = %v, %v", ok, err)
	}
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}
