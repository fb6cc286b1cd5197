package render

import (
	"strings"

	deckerrors "github.com/alexisbeaulieu97/deck/pkg/errors"
)

var markupEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EscapeSource escapes &, < and > so source text cannot be read as markup.
func EscapeSource(source string) string {
	return markupEscaper.Replace(source)
}

// ErrorPanel formats a render failure for display: the engine message
// followed by the escaped original source.
func ErrorPanel(err *deckerrors.RenderError) string {
	var b strings.Builder
	b.WriteString("Diagram failed to render\n\n")
	b.WriteString(err.Message())
	b.WriteString("\n\nSource:\n")
	b.WriteString(EscapeSource(err.Source))
	return b.String()
}
