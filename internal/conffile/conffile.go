// Package conffile locates, reads, and safely writes the toolsel configuration file
package conffile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	defaultDirMode  = 0700
	defaultFileMode = 0600
)

// File is a configuration file on the local filesystem
type File struct {
	perms    int
	fullname string
}

// Opt is used to set options on a File
type Opt func(*File)

// New returns a File, or nil when no option resolved a filename.
// Options are applied in order, a later option that resolves overrides an earlier one.
func New(opts ...Opt) *File {
	f := File{perms: defaultFileMode}
	for _, fn := range opts {
		fn(&f)
	}
	if f.fullname == "" {
		return nil
	}
	return &f
}

// WithAppDir uses the OS specific application config directory.
// Without force, the file is only used when it already exists.
func WithAppDir(dirUnix, dirWin, filename string, force bool) Opt {
	return func(f *File) {
		dir := appDir()
		if dir == "" {
			return
		}
		fullname := filepath.Join(dir, osString(dirUnix, dirWin), filename)
		if force || fileExists(fullname) {
			f.fullname = fullname
		}
	}
}

// WithDirName uses the directory and filename when the file exists.
func WithDirName(dir, filename string) Opt {
	return func(f *File) {
		fullname := filepath.Join(dir, filename)
		if fileExists(fullname) {
			f.fullname = fullname
		}
	}
}

// WithEnvDir uses a directory from an environment variable when it is set.
func WithEnvDir(envVar, filename string) Opt {
	return func(f *File) {
		dir := os.Getenv(envVar)
		if dir != "" {
			f.fullname = filepath.Join(dir, filename)
		}
	}
}

// WithEnvFile uses the filename from an environment variable when it is set.
func WithEnvFile(envVar string) Opt {
	return func(f *File) {
		fullname := os.Getenv(envVar)
		if fullname != "" {
			f.fullname = fullname
		}
	}
}

// WithFullname uses an explicit filename.
func WithFullname(fullname string) Opt {
	return func(f *File) {
		f.fullname = fullname
	}
}

// WithHomeDir uses a directory under the user's home.
// Without force, the file is only used when it already exists.
func WithHomeDir(dir, filename string, force bool) Opt {
	return func(f *File) {
		home := homeDir()
		if home == "" {
			return
		}
		fullname := filepath.Join(home, dir, filename)
		if force || fileExists(fullname) {
			f.fullname = fullname
		}
	}
}

// WithPerms sets the permissions used when creating the file.
func WithPerms(perms int) Opt {
	return func(f *File) {
		f.perms = perms
	}
}

// Name returns the full filename
func (f *File) Name() string {
	return f.fullname
}

// Open returns a reader for the file content
func (f *File) Open() (io.ReadCloser, error) {
	return os.Open(f.fullname)
}

// Write replaces the file content.
// The content is written to a temp file and renamed, keeping the owner and mode of any existing file.
func (f *File) Write(rdr io.Reader) error {
	dir := filepath.Dir(f.fullname)
	//#nosec G301 directory is restricted to the user
	if err := os.MkdirAll(dir, defaultDirMode); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	mode := fs.FileMode(f.perms)
	uid, gid := -1, -1
	stat, err := os.Stat(f.fullname)
	if err == nil {
		mode = stat.Mode()
		uid, gid, err = getFileOwner(stat)
		if err != nil {
			return err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.fullname)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)
	if _, err := io.Copy(tmp, rdr); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return err
	}
	if uid >= 0 && (uid != os.Getuid() || gid != os.Getgid()) {
		// ignore failures, only root can change the owner
		_ = os.Chown(tmpName, uid, gid)
	}
	return os.Rename(tmpName, f.fullname)
}

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

func homeDir() string {
	home := os.Getenv(homeEnv)
	if home == "" {
		if h, err := os.UserHomeDir(); err == nil {
			home = h
		}
	}
	return home
}
