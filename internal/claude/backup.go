package claude

import (
	"fmt"
	"os"
)

// BackupSuffix is appended to a file name when snapshotting it before a
// forced overwrite.
const BackupSuffix = ".backup"

// Snapshot copies the file at path to path + BackupSuffix and returns the
// backup path. A missing source is not an error: nothing is written and
// the returned path is empty.
func Snapshot(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading %s for backup: %w", path, err)
	}

	backupPath := path + BackupSuffix
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing backup %s: %w", backupPath, err)
	}

	return backupPath, nil
}
