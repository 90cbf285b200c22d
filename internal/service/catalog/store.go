package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Record is one product object of the products file. Unknown keys are kept verbatim.
type Record map[string]json.RawMessage

// Str returns the string value of key, or "" when absent or not a string.
func (r Record) Str(key string) string {
	var s string
	if raw, ok := r[key]; ok {
		_ = json.Unmarshal(raw, &s)
	}
	return s
}

// Images returns the "images" list of the record.
func (r Record) Images() []string {
	var out []string
	if raw, ok := r["images"]; ok {
		_ = json.Unmarshal(raw, &out)
	}
	return out
}

// Raw returns the value of key or JSON null.
func (r Record) Raw(key string) json.RawMessage {
	if raw, ok := r[key]; ok {
		return raw
	}
	return json.RawMessage("null")
}

func (r Record) clone() Record {
	out := make(Record, len(r)+4)
	for k, v := range r {
		out[k] = v
	}
	return out
}

func (r Record) set(key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	r[key] = b
}

// FileStore keeps the product list in a JSON array file.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

// NewFileStore creates a store over path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads all records. A missing file is an empty catalog.
func (s *FileStore) Load() ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.load()
}

func (s *FileStore) load() ([]Record, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}
	var out []Record
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return out, nil
}

// Update applies fn to the record at index and writes the file back.
func (s *FileStore) Update(index int, fn func(Record)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.load()
	if err != nil {
		return false, err
	}
	if index < 0 || index >= len(recs) {
		return false, nil
	}
	if recs[index] == nil {
		recs[index] = Record{}
	}
	fn(recs[index])
	return true, s.write(recs)
}

func (s *FileStore) write(recs []Record) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recs); err != nil {
		return fmt.Errorf("encode products: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".products-*.json")
	if err != nil {
		return fmt.Errorf("write products: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write products: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write products: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace products: %w", err)
	}
	return nil
}
