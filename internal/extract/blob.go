package extract

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/propertyops/asset-governor/internal/common"
)

// FSBlobStore serves blobs from a directory tree. Refs are paths relative to
// the root; anything that escapes the root is rejected.
type FSBlobStore struct {
	root string
}

func NewFSBlobStore(root string) *FSBlobStore {
	return &FSBlobStore{root: root}
}

func (s *FSBlobStore) Fetch(_ context.Context, ref string) ([]byte, error) {
	clean := filepath.Clean(ref)
	if filepath.IsAbs(clean) || strings.HasPrefix(clean, "..") {
		return nil, common.NewExtractionError("blob ref escapes store root", nil)
	}
	b, err := os.ReadFile(filepath.Join(s.root, clean))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.NewExtractionError("blob not found", err)
		}
		return nil, common.NewTransientError("blob read failed", err)
	}
	return b, nil
}

// MemoryBlobStore holds blobs in a map. Backs tests and the batch CLI.
type MemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{blobs: make(map[string][]byte)}
}

func (s *MemoryBlobStore) Put(ref string, content []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[ref] = append([]byte(nil), content...)
}

func (s *MemoryBlobStore) Fetch(_ context.Context, ref string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blobs[ref]
	if !ok {
		return nil, common.NewExtractionError("blob not found", nil)
	}
	return append([]byte(nil), b...), nil
}
