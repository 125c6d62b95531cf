package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// FileStore appends results to a file, one JSON document per line
type FileStore struct {
	mu   sync.Mutex
	f    *os.File
	enc  *json.Encoder
	path string
}

// OpenFile opens or creates the results file at path
func OpenFile(path string) (*FileStore, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open results file: %w", err)
	}
	return &FileStore{f: f, enc: json.NewEncoder(f), path: path}, nil
}

// Save appends r as a single line
func (s *FileStore) Save(ctx context.Context, r Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return fmt.Errorf("results file %s is closed", s.path)
	}
	if err := s.enc.Encode(r); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// Close closes the file. Later saves fail.
func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}
