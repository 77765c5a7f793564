// Package safeio implements the overwrite guard shared by every file
// write pq-falcon-sigs performs.
package safeio

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Policy decides whether an existing file may be replaced.
type Policy int

const (
	// NoClobber refuses to touch an existing path.
	NoClobber Policy = iota
	// Overwrite replaces an existing path.
	Overwrite
)

// PolicyFor maps a --force flag to a Policy.
func PolicyFor(force bool) Policy {
	if force {
		return Overwrite
	}
	return NoClobber
}

func (p Policy) String() string {
	if p == Overwrite {
		return "overwrite"
	}
	return "no-clobber"
}

// Options controls file and directory modes for WriteFile.
type Options struct {
	Perm    fs.FileMode // mode of the written file, before umask
	DirPerm fs.FileMode // mode of created parent directories
	// Restrict applies Perm with chmod before the file becomes visible,
	// so the umask cannot widen or narrow it.
	Restrict bool
}

// PublicFile is used for public keys and signed/recovered output.
var PublicFile = Options{Perm: 0644, DirPerm: 0755}

// PrivateFile is used for secret keys.
var PrivateFile = Options{Perm: 0600, DirPerm: 0700, Restrict: true}

// ReadFile reads path to completion. A missing file is a *NotFoundError.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Exists reports whether path exists. Symlinks are not followed.
func Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s: %w", path, err)
}

// CheckWritable applies the overwrite guard without writing anything.
func CheckWritable(path string, policy Policy) error {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if policy != Overwrite {
		return &RefusedOverwriteError{Path: path}
	}
	return nil
}

// WriteFile writes data to path under the overwrite guard.
//
// Data is staged in a sibling temp file and committed with a rename
// (Overwrite) or a hard link (NoClobber), so the target is either left
// untouched or fully replaced.
func WriteFile(path string, data []byte, policy Policy, opts Options) error {
	if err := CheckWritable(path, policy); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, opts.DirPerm); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	tmpPath, err := stage(dir, filepath.Base(path), data, opts)
	if err != nil {
		return err
	}
	defer os.Remove(tmpPath)

	if policy == Overwrite {
		if err := os.Rename(tmpPath, path); err != nil {
			return fmt.Errorf("replace %s: %w", path, err)
		}
		return nil
	}

	if err := os.Link(tmpPath, path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return &RefusedOverwriteError{Path: path}
		}
		// Filesystems without hard links: fall back to a checked rename.
		if err := CheckWritable(path, policy); err != nil {
			return err
		}
		if err := os.Rename(tmpPath, path); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}

// stage writes data to a new temp file in dir and returns its path.
func stage(dir, base string, data []byte, opts Options) (string, error) {
	suffix := make([]byte, 6)
	if _, err := rand.Read(suffix); err != nil {
		return "", fmt.Errorf("generate temp name: %w", err)
	}
	tmpPath := filepath.Join(dir, "."+base+"."+hex.EncodeToString(suffix)+".tmp")

	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, opts.Perm)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if opts.Restrict {
		if err := f.Chmod(opts.Perm); err != nil {
			f.Close()
			os.Remove(tmpPath)
			return "", fmt.Errorf("restrict permissions: %w", err)
		}
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("close temp file: %w", err)
	}
	return tmpPath, nil
}
