package infra

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// BackupDatabase copies the database file to destPath. The store connection
// must already be closed — the copy is a plain byte copy of the file, so a
// live connection could leave the backup mid-write.
func BackupDatabase(dbPath, destPath string) error {
	if _, err := os.Stat(dbPath); err != nil {
		return fmt.Errorf("backup source: %w", err)
	}
	return copyFile(dbPath, destPath)
}

// RestoreDatabase replaces the database file with the backup at srcPath.
// The store connection must be closed; reopen after restoring.
func RestoreDatabase(srcPath, dbPath string) error {
	if _, err := os.Stat(srcPath); err != nil {
		return fmt.Errorf("restore source: %w", err)
	}
	return copyFile(srcPath, dbPath)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if dir := filepath.Dir(dst); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
