package store

import (
	"fmt"
	"io"
	"os"
)

// FileStore keeps the settings record at a fixed offset in a file. The
// file can be a plain file or a sysfs nvmem attribute; both support the
// positional reads and writes used here. The file is opened per operation
// so a transient storage problem does not pin a stale descriptor.
type FileStore struct {
	path   string
	offset int64
}

// NewFileStore creates a store backed by the given path and offset.
func NewFileStore(path string, offset int64) *FileStore {
	return &FileStore{path: path, offset: offset}
}

// ReadRecord reads the settings record. A missing file or a short read
// yields a zeroed record, which Load treats as uninitialized.
func (s *FileStore) ReadRecord() (Config, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	buf := make([]byte, RecordSize)
	if _, err := f.ReadAt(buf, s.offset); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("read %s: %w", s.path, err)
	}
	return Unmarshal(buf)
}

// WriteRecord writes the settings record in place.
func (s *FileStore) WriteRecord(cfg Config) error {
	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	if _, err := f.WriteAt(cfg.Marshal(), s.offset); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}
