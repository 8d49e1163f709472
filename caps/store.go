package caps

import (
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/juju/errors"
	"github.com/temoto/extremofile"
	"github.com/temoto/inputlinux/log2"
)

type storage interface {
	Read() ([]byte, error)
	io.Writer
}

// Store keeps profiles on disk, one extremofile directory per name.
type Store struct {
	sync.Mutex
	log  *log2.Log
	root string
	// tests replace storage
	open func(dir string) storage
}

func NewStore(root string, log *log2.Log) (*Store, error) {
	if root == "" {
		return nil, errors.Errorf("caps store root=empty")
	}
	return &Store{
		log:  log,
		root: root,
		open: func(dir string) storage {
			return extremofile.New(extremofile.Config{
				Dir:      dir,
				DirPerm:  0755,
				FilePerm: 0644,
			})
		},
	}, nil
}

func (self *Store) Save(p *Profile) error {
	if p.Name == "" {
		return errors.NotValidf("caps profile name=empty")
	}
	b, err := p.MarshalBinary()
	if err != nil {
		return errors.Annotatef(err, "caps %s Save", p.Name)
	}
	self.Lock()
	defer self.Unlock()
	_, err = self.open(filepath.Join(self.root, p.Name)).Write(b)
	return errors.Annotatef(err, "caps %s Save", p.Name)
}

// Load returns NotFound when nothing was saved under name.
func (self *Store) Load(name string) (*Profile, error) {
	self.Lock()
	defer self.Unlock()
	tbegin := time.Now()
	b, err := self.open(filepath.Join(self.root, name)).Read()
	self.log.Debugf("caps %s storage.read duration=%v", name, time.Since(tbegin))
	if b == nil {
		if err == nil {
			err = errors.NotFoundf("caps profile name=%s", name)
		}
		return nil, errors.Annotatef(err, "caps %s Load", name)
	}
	if err != nil {
		self.log.Errorf("caps %s ignore non-critical storage err=%v", name, err)
	}
	p := &Profile{}
	if err = p.UnmarshalBinary(b); err != nil {
		return nil, errors.Annotatef(err, "caps %s Load", name)
	}
	return p, nil
}
