package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileSlots keeps each slot as a JSON file under a data directory.
// Writes go through a temp file and rename so a crash mid-write never
// leaves a half-written document behind.
type FileSlots struct {
	dir string
}

func NewFileSlots(dir string) (*FileSlots, error) {
	if dir == "" {
		dir = "data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileSlots{dir: dir}, nil
}

func (f *FileSlots) path(name string) string {
	return filepath.Join(f.dir, name+".json")
}

func (f *FileSlots) Load(_ context.Context, name string) ([]byte, error) {
	doc, err := os.ReadFile(f.path(name))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (f *FileSlots) Save(_ context.Context, name string, doc []byte) error {
	tmp, err := os.CreateTemp(f.dir, name+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, f.path(name)); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// MemorySlots is the medium used by tests and dev mode: same semantics
// as FileSlots without touching disk.
type MemorySlots struct {
	docs map[string][]byte
}

func NewMemorySlots() *MemorySlots {
	return &MemorySlots{docs: make(map[string][]byte)}
}

func (m *MemorySlots) Load(_ context.Context, name string) ([]byte, error) {
	return m.docs[name], nil
}

func (m *MemorySlots) Save(_ context.Context, name string, doc []byte) error {
	copied := make([]byte, len(doc))
	copy(copied, doc)
	m.docs[name] = copied
	return nil
}
