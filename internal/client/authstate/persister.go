package authstate

import (
	"errors"
	"io/fs"
	"medadmin-service/internal/pkg/dto/responses"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
)

// Snapshot is the persisted auth state, keyed like the browser localStorage layout.
type Snapshot struct {
	Token string          `json:"token,omitempty"`
	User  *responses.User `json:"user,omitempty"`
}

type Persister interface {
	Load() (Snapshot, error)
	Save(snapshot Snapshot) error
}

// FilePersister keeps the snapshot in a single JSON file.
type FilePersister struct {
	Path string
}

func NewFilePersister(path string) *FilePersister {
	return &FilePersister{Path: path}
}

func (p *FilePersister) Load() (Snapshot, error) {
	var snapshot Snapshot
	data, err := os.ReadFile(p.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return snapshot, nil
	}
	if err != nil {
		return snapshot, err
	}
	if len(data) == 0 {
		return snapshot, nil
	}
	err = json.Unmarshal(data, &snapshot)
	return snapshot, err
}

// Save writes to a temp file in the same directory and renames it over the target.
func (p *FilePersister) Save(snapshot Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	dir := filepath.Dir(p.Path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(p.Path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, p.Path)
}

type MemoryPersister struct {
	mu       sync.Mutex
	snapshot Snapshot
	saves    int
}

func NewMemoryPersister(initial Snapshot) *MemoryPersister {
	return &MemoryPersister{snapshot: initial}
}

func (p *MemoryPersister) Load() (Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshot, nil
}

func (p *MemoryPersister) Save(snapshot Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snapshot = snapshot
	p.saves++
	return nil
}

// Saves reports how many times Save was called.
func (p *MemoryPersister) Saves() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saves
}
