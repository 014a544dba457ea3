package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	doc, ok, err := Load(filepath.Join(t.TempDir(), "storage.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Error("ok = false for a missing file, want true")
	}
	if len(doc) != 0 {
		t.Errorf("doc = %v, want empty", doc)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, ok, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Error("ok = true for invalid JSON, want false")
	}
	if len(doc) != 0 {
		t.Errorf("doc = %v, want empty", doc)
	}

	// The corrupt file is superseded, never deleted.
	if _, err := os.Stat(path); err != nil {
		t.Errorf("corrupt file was removed: %v", err)
	}
}

func TestLoadNonObjectJSON(t *testing.T) {
	for _, content := range []string{`[1,2,3]`, `"scalar"`, `42`, `null`} {
		path := filepath.Join(t.TempDir(), "storage.json")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		doc, ok, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", content, err)
		}
		if ok {
			t.Errorf("ok = true for non-object JSON %s, want false", content)
		}
		if len(doc) != 0 {
			t.Errorf("doc = %v for %s, want empty", doc, content)
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	want := Document{
		"foo":                 "bar",
		"telemetry.machineId": "abc123",
		"nested":              map[string]any{"a": "b"},
		"number":              float64(7),
	}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, ok, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Error("ok = false after Save, want true")
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round-trip = %v, want %v", got, want)
	}
}

func TestSaveCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Windsurf", "User", "globalStorage", "storage.json")

	if err := Save(path, Document{"k": "v"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("storage file missing after Save: %v", err)
	}
}

func TestSavePrettyPrints(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")

	if err := Save(path, Document{"foo": "bar"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	want := "{\n  \"foo\": \"bar\"\n}\n"
	if string(data) != want {
		t.Errorf("file content = %q, want %q", data, want)
	}
}

func TestSaveOverwritesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, ok, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Error("ok = true for corrupt file, want false")
	}
	doc["fresh"] = "value"
	if err := Save(path, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "not json") {
		t.Errorf("corrupt content survived the save: %q", data)
	}

	got, ok, err := Load(path)
	if err != nil || !ok {
		t.Fatalf("Load after Save: ok=%v err=%v", ok, err)
	}
	if got["fresh"] != "value" {
		t.Errorf("fresh = %v, want value", got["fresh"])
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "storage.json")

	if err := Save(path, Document{"k": "v"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "storage.json" {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
		}
		t.Errorf("dir entries = %v, want [storage.json]", names)
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "storage.json")

	ok, err := Exists(path)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if ok {
		t.Error("Exists = true for missing file")
	}

	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	ok, err = Exists(path)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !ok {
		t.Error("Exists = false for present file")
	}
}
