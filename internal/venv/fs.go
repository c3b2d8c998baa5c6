package venv

import (
	"io/fs"
	"os"
)

// FS is the minimal filesystem surface the finder needs.
type FS interface {
	Stat(path string) (fs.FileInfo, error)
	ReadDir(path string) ([]fs.DirEntry, error)
}

type osFS struct{}

func (osFS) Stat(path string) (fs.FileInfo, error)      { return os.Stat(path) }
func (osFS) ReadDir(path string) ([]fs.DirEntry, error) { return os.ReadDir(path) }

// OS returns an FS backed by the real filesystem.
func OS() FS { return osFS{} }
