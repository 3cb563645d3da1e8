// Package export renders the record list as JSON for the preview panel
// and the export subcommand. Nothing here mutates the store.
package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/idilsaglam/grid/internal/model"
)

// JSON encodes records in list order. indent <= 0 gives compact output.
func JSON(records []model.Record, indent int) ([]byte, error) {
	if records == nil {
		records = []model.Record{}
	}
	var (
		b   []byte
		err error
	)
	if indent > 0 {
		b, err = json.MarshalIndent(records, "", strings.Repeat(" ", indent))
	} else {
		b, err = json.Marshal(records)
	}
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// Text is JSON for display; encoding a record list cannot fail in practice,
// so errors are rendered inline.
func Text(records []model.Record, indent int) string {
	b, err := JSON(records, indent)
	if err != nil {
		return "error: " + err.Error()
	}
	return string(b)
}
