package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// File is a Store backed by a single JSON document on disk. The whole map is
// rewritten on every Set/Delete via a temp file and rename, so a crash never
// leaves a half-written save.
type File struct {
	path string
	data map[string]json.RawMessage
}

// OpenFile loads the store at path, starting empty if the file is absent
func OpenFile(path string) (*File, error) {
	f := &File{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("read store %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &f.data); err != nil {
		return nil, fmt.Errorf("parse store %s: %w", path, err)
	}
	return f, nil
}

func (f *File) Get(key string, v any) (bool, error) {
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

func (f *File) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	f.data[key] = raw
	return f.flush()
}

func (f *File) Delete(key string) error {
	if _, ok := f.data[key]; !ok {
		return nil
	}
	delete(f.data, key)
	return f.flush()
}

func (f *File) Keys() ([]string, error) {
	keys := make([]string, 0, len(f.data))
	for k := range f.data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

func (f *File) flush() error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	raw, err := json.MarshalIndent(f.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("commit store: %w", err)
	}
	return nil
}
