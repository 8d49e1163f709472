package config

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/juju/errors"
)

// Files reads config sources from fsys. Relative names resolve against dir.
// Normalized names have no leading slash, as fs.FS requires.
type Files struct {
	fsys fs.FS
	dir  string
}

func NewFiles(fsys fs.FS, dir string) *Files {
	return &Files{fsys: fsys, dir: dir}
}

// OsFiles resolves relative names against dir of the OS filesystem.
func OsFiles(dir string) (*Files, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Annotatef(err, "filepath.Abs() path=%s", dir)
	}
	return NewFiles(os.DirFS("/"), filepath.ToSlash(abs)), nil
}

func (self *Files) Normalize(name string) string {
	name = filepath.ToSlash(name)
	if !path.IsAbs(name) {
		name = path.Join(self.dir, name)
	}
	name = strings.TrimPrefix(path.Clean(name), "/")
	if name == "" {
		return "."
	}
	return name
}

// ReadAll returns nil,nil when name does not exist.
func (self *Files) ReadAll(name string) ([]byte, error) {
	b, err := fs.ReadFile(self.fsys, name)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err == nil && b == nil {
		b = []byte{}
	}
	return b, err
}

// at returns Files resolving relative to the directory of name.
func (self *Files) at(name string) *Files {
	return NewFiles(self.fsys, path.Dir(self.Normalize(name)))
}
