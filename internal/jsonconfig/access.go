package jsonconfig

import (
	"fmt"
	"os"
)

// CheckAccess verifies that dir exists, is a directory, and can hold a
// config file.
func CheckAccess(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrValidation, dir)
	}
	if err := checkWritable(dir); err != nil {
		return fmt.Errorf("%s: insufficient permissions: %w", dir, err)
	}
	return nil
}
