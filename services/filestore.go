package services

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path"

	"github.com/pkg/errors"
)

// FileStore keeps each app's state in a flat <name>.json file.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(err, "creating data directory")
	}
	return &FileStore{dir: dir}, nil
}

func (self *FileStore) path(name string) string {
	return path.Join(self.dir, name+".json")
}

// Load reads <name>.json into v. A missing or unreadable file leaves v
// untouched, so callers start from their empty defaults.
func (self *FileStore) Load(name string, v interface{}) error {
	data, err := ioutil.ReadFile(self.path(name))
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return nil
	}
	return nil
}

// Save writes v to <name>.json, atomically via a rename.
func (self *FileStore) Save(name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", name)
	}
	tmp := self.path(name) + ".tmp"
	if err := ioutil.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", name)
	}
	if err := os.Rename(tmp, self.path(name)); err != nil {
		return errors.Wrapf(err, "replacing %s", name)
	}
	return nil
}
