package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func noEnv(string) string { return "" }

func TestStoragePathPerPlatform(t *testing.T) {
	tests := []struct {
		goos   string
		getenv func(string) string
		home   string
		want   string
	}{
		{
			goos: "windows",
			getenv: func(key string) string {
				if key == "APPDATA" {
					return `C:\Users\test\AppData\Roaming`
				}
				return ""
			},
			want: filepath.Join(`C:\Users\test\AppData\Roaming`, "Windsurf", "User", "globalStorage", "storage.json"),
		},
		{
			goos:   "darwin",
			getenv: noEnv,
			home:   "/Users/test",
			want:   filepath.Join("/Users/test", "Library", "Application Support", "Windsurf", "User", "globalStorage", "storage.json"),
		},
		{
			goos:   "linux",
			getenv: noEnv,
			home:   "/home/test",
			want:   filepath.Join("/home/test", ".config", "Windsurf", "User", "globalStorage", "storage.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			got, err := StoragePath(tt.goos, tt.getenv, tt.home)
			if err != nil {
				t.Fatalf("StoragePath(%s): %v", tt.goos, err)
			}
			if got != tt.want {
				t.Errorf("StoragePath(%s) = %q, want %q", tt.goos, got, tt.want)
			}
			suffix := filepath.Join("Windsurf", "User", "globalStorage", "storage.json")
			if !strings.HasSuffix(got, suffix) {
				t.Errorf("StoragePath(%s) = %q, want suffix %q", tt.goos, got, suffix)
			}
		})
	}
}

func TestStoragePathUnsupportedPlatform(t *testing.T) {
	for _, goos := range []string{"plan9", "freebsd", "js", ""} {
		_, err := StoragePath(goos, noEnv, "/home/test")
		if !errors.Is(err, ErrUnsupportedPlatform) {
			t.Errorf("StoragePath(%q) error = %v, want ErrUnsupportedPlatform", goos, err)
		}
	}
}

func TestStoragePathWindowsMissingAppData(t *testing.T) {
	_, err := StoragePath("windows", noEnv, "")
	if !errors.Is(err, ErrPathUnavailable) {
		t.Errorf("error = %v, want ErrPathUnavailable", err)
	}
}

func TestLocateOverride(t *testing.T) {
	dir := t.TempDir()
	override := filepath.Join(dir, "storage.json")

	got, err := Locate(override)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if got != override {
		t.Errorf("Locate = %q, want %q", got, override)
	}
}

func TestLocateOverrideMissingParents(t *testing.T) {
	// Parents that do not exist yet are fine; they get created on save.
	override := filepath.Join(t.TempDir(), "Windsurf", "User", "globalStorage", "storage.json")

	got, err := Locate(override)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if got != override {
		t.Errorf("Locate = %q, want %q", got, override)
	}
}

func TestLocateOverrideUnwritableBase(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("root ignores directory permissions")
	}
	dir := t.TempDir()
	if err := os.Chmod(dir, 0o500); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	_, err := Locate(filepath.Join(dir, "storage.json"))
	if !errors.Is(err, ErrPathUnavailable) {
		t.Errorf("error = %v, want ErrPathUnavailable", err)
	}
}
