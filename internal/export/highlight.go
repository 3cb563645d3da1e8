package export

import (
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
)

const DefaultStyle = "monokai"

// Highlight colours JSON for a 256-colour terminal. If highlighting fails
// the plain text is returned.
func Highlight(src, style string) string {
	if style == "" {
		style = DefaultStyle
	}
	var b strings.Builder
	if err := quick.Highlight(&b, src, "json", "terminal256", style); err != nil {
		return src
	}
	return b.String()
}
