package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Save writes keys to path in the given format. The encoder is resolved
// before anything touches the filesystem, so an unknown format leaves no
// file behind. The parent directory is created when missing. Write failures
// surface immediately; there is no partial-write recovery.
func Save(keys []string, path, format string) error {
	enc, err := For(format)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("output: create dir %q: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create %q: %w", path, err)
	}
	if err := enc.Encode(f, keys); err != nil {
		f.Close()
		return fmt.Errorf("output: write %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("output: close %q: %w", path, err)
	}
	return nil
}
