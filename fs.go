package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// CllsimFS is an Afero FS that can also resolve paths the way the OS
// does, so config lookup works the same against a MemMapFs in tests
type CllsimFS interface {
	afero.Fs
	Abs(string) (string, error)
	HomeDir() (string, error)
}

type cllsimOSFS struct {
	afero.Fs
}

func NewCllsimOSFS() CllsimFS {
	return &cllsimOSFS{
		afero.NewOsFs(),
	}
}

func (c *cllsimOSFS) Abs(path string) (string, error) {
	return filepath.Abs(path)
}

func (c *cllsimOSFS) HomeDir() (string, error) {
	return os.UserHomeDir()
}

type cllsimMemFS struct {
	afero.Fs
	home string
}

// NewCllsimMemFS resolves relative paths against "/" and uses "/home" as
// the home directory
func NewCllsimMemFS() CllsimFS {
	return &cllsimMemFS{
		Fs:   afero.NewMemMapFs(),
		home: "/home",
	}
}

func (c *cllsimMemFS) Abs(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	return filepath.Join("/", path), nil
}

func (c *cllsimMemFS) HomeDir() (string, error) {
	return c.home, nil
}
