package fs

import (
	iofs "io/fs"
	"os"
	"path/filepath"
)

// OSFileSystem reads files below Root from disk.
type OSFileSystem struct {
	Root string
}

func NewOSFileSystem(root string) *OSFileSystem {
	return &OSFileSystem{Root: root}
}

func (fs *OSFileSystem) resolve(path string) string {
	return filepath.Join(fs.Root, filepath.FromSlash(path))
}

func (fs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(fs.resolve(path))
}

func (fs *OSFileSystem) ReadDir(path string) ([]iofs.DirEntry, error) {
	return os.ReadDir(fs.resolve(path))
}

func (fs *OSFileSystem) FileExists(path string) bool {
	info, err := os.Stat(fs.resolve(path))
	return err == nil && !info.IsDir()
}

func (fs *OSFileSystem) Stat(path string) (iofs.FileInfo, error) {
	return os.Stat(fs.resolve(path))
}
