package storage

import (
	"fmt"
	"io"
	"os"
	"time"
)

const backupTimeFormat = "20060102_150405"

// Backup copies the file at path to a timestamped sibling named
// <name>.backup_<YYYYMMDD_HHMMSS>, preserving the mode and modification
// time of the original. Returns "" with no error when the source does not
// exist. A same-second collision gets a numeric suffix (.2, .3, ...) so an
// earlier backup is never overwritten.
func Backup(path string, now time.Time) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("checking %s: %w", path, err)
	}

	backupPath := fmt.Sprintf("%s.backup_%s", path, now.Format(backupTimeFormat))
	for n := 2; ; n++ {
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			break
		}
		backupPath = fmt.Sprintf("%s.backup_%s.%d", path, now.Format(backupTimeFormat), n)
	}

	if err := copyFile(path, backupPath, info.Mode()); err != nil {
		return "", err
	}
	// Match the original's timestamps where the filesystem allows it.
	if err := os.Chtimes(backupPath, info.ModTime(), info.ModTime()); err != nil {
		return "", fmt.Errorf("setting backup timestamps: %w", err)
	}
	return backupPath, nil
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("copying to %s: %w", dst, err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("copying to %s: %w", dst, err)
	}
	return nil
}
