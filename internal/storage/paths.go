// Package storage locates, loads, saves, and backs up the Windsurf global
// storage file.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Subpath of the storage file below the platform config root.
var storageSubpath = filepath.Join("Windsurf", "User", "globalStorage", "storage.json")

var (
	// ErrUnsupportedPlatform is returned for operating systems this tool
	// has no storage path mapping for.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrPathUnavailable is returned when the platform config root does
	// not exist or is not writable by the current user.
	ErrPathUnavailable = errors.New("storage path unavailable")
)

// StoragePath maps an operating system identifier (GOOS values) to the
// absolute storage file path. getenv and home are injected so every
// platform branch is testable from any host.
//
//	windows: %APPDATA%/Windsurf/User/globalStorage/storage.json
//	darwin:  ~/Library/Application Support/Windsurf/User/globalStorage/storage.json
//	linux:   ~/.config/Windsurf/User/globalStorage/storage.json
func StoragePath(goos string, getenv func(string) string, home string) (string, error) {
	var base string
	switch goos {
	case "windows":
		base = getenv("APPDATA")
		if base == "" {
			return "", fmt.Errorf("%w: APPDATA is not set", ErrPathUnavailable)
		}
	case "darwin":
		if home == "" {
			return "", fmt.Errorf("%w: home directory unknown", ErrPathUnavailable)
		}
		base = filepath.Join(home, "Library", "Application Support")
	case "linux":
		if home == "" {
			return "", fmt.Errorf("%w: home directory unknown", ErrPathUnavailable)
		}
		base = filepath.Join(home, ".config")
	default:
		return "", fmt.Errorf("%w: %s (supported: windows, darwin, linux)", ErrUnsupportedPlatform, goos)
	}
	return filepath.Join(base, storageSubpath), nil
}

// Locate resolves the storage file path for the current host and verifies
// the config root exists and is writable, so failures surface before any
// file is touched. An explicit override skips the platform mapping but not
// the writability probe on its parent.
func Locate(override string) (string, error) {
	if override != "" {
		// Missing parents get created on save, so probe the nearest
		// ancestor that already exists.
		if err := checkBase(nearestExisting(filepath.Dir(override))); err != nil {
			return "", err
		}
		return override, nil
	}

	home, err := os.UserHomeDir()
	if err != nil && runtime.GOOS != "windows" {
		return "", fmt.Errorf("%w: resolving home directory: %v", ErrPathUnavailable, err)
	}

	path, err := StoragePath(runtime.GOOS, os.Getenv, home)
	if err != nil {
		return "", err
	}

	// The config root is the segment above Windsurf/User/globalStorage.
	base := path
	for i := 0; i < 4; i++ {
		base = filepath.Dir(base)
	}
	if err := checkBase(base); err != nil {
		return "", err
	}
	return path, nil
}

func nearestExisting(dir string) string {
	for {
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}

func checkBase(base string) error {
	info, err := os.Stat(base)
	if err != nil {
		return fmt.Errorf("%w: base directory %s does not exist", ErrPathUnavailable, base)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrPathUnavailable, base)
	}

	// Probe for write permission. os.Access does not exist and mode bits
	// lie on Windows, so create and remove a scratch file.
	probe, err := os.CreateTemp(base, ".wsreset-probe-*")
	if err != nil {
		return fmt.Errorf("%w: no write permission for %s", ErrPathUnavailable, base)
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)
	return nil
}
