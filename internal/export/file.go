package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/grid/internal/model"
)

// WriteFile writes a JSON snapshot of records to path. It is an export
// only; the grid never reads it back.
func WriteFile(path string, records []model.Record, indent int) error {
	if path == "" {
		return fmt.Errorf("write snapshot: empty path")
	}
	b, err := JSON(records, indent)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
