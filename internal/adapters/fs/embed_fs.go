package fs

import (
	iofs "io/fs"
	"path"
)

// EmbedFileSystem serves files from an embed.FS (or any fs.FS) below Root.
type EmbedFileSystem struct {
	fs   iofs.FS
	root string
}

func NewEmbedFileSystem(fsys iofs.FS, root string) *EmbedFileSystem {
	return &EmbedFileSystem{fs: fsys, root: root}
}

func (fs *EmbedFileSystem) resolve(p string) string {
	if fs.root == "" {
		return p
	}
	return path.Join(fs.root, p)
}

func (fs *EmbedFileSystem) ReadFile(p string) ([]byte, error) {
	return iofs.ReadFile(fs.fs, fs.resolve(p))
}

func (fs *EmbedFileSystem) ReadDir(p string) ([]iofs.DirEntry, error) {
	return iofs.ReadDir(fs.fs, fs.resolve(p))
}

func (fs *EmbedFileSystem) FileExists(p string) bool {
	info, err := iofs.Stat(fs.fs, fs.resolve(p))
	return err == nil && !info.IsDir()
}

func (fs *EmbedFileSystem) Stat(p string) (iofs.FileInfo, error) {
	return iofs.Stat(fs.fs, fs.resolve(p))
}
