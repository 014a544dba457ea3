package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Document is the parsed storage file: a JSON object whose unrecognized
// keys pass through untouched.
type Document map[string]any

// Exists reports whether the storage file is present.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("checking %s: %w", path, err)
}

// Load reads the document at path. A missing file yields an empty document
// with no error. A file holding invalid JSON, or valid JSON that is not an
// object, also yields an empty document but ok=false so callers can warn;
// the corrupt file stays on disk until the next Save supersedes it. Any
// other read failure is an error.
func Load(path string) (doc Document, ok bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, true, nil
		}
		return nil, false, fmt.Errorf("reading %s: %w", path, err)
	}

	doc = Document{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, false, nil
	}
	return doc, true, nil
}

// Save writes doc to path as pretty-printed UTF-8 JSON with 2-space
// indentation, creating missing parent directories. The write goes through
// a temp file and rename so a failure never leaves a half-written storage
// file behind.
func Save(path string, doc Document) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding storage file: %w", err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
