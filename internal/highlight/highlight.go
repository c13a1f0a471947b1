// Package highlight renders script buffers with ANSI syntax colors.
package highlight

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrUnknownLanguage is returned when no lexer matches the language name
var ErrUnknownLanguage = errors.New("unknown language")

// Highlighter tokenises source for a single language and style
type Highlighter struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter chroma.Formatter
}

// New creates a Highlighter. Unknown style names fall back to chroma's default style.
func New(language, style string) (*Highlighter, error) {
	lexer := lexers.Get(strings.TrimSpace(language))
	if lexer == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	return &Highlighter{
		lexer:     chroma.Coalesce(lexer),
		style:     styles.Get(style),
		formatter: formatter,
	}, nil
}

// Language returns the lexer name
func (h *Highlighter) Language() string {
	return h.lexer.Config().Name
}

// Style returns the style name
func (h *Highlighter) Style() string {
	return h.style.Name
}

// Render returns src with ANSI color escapes
func (h *Highlighter) Render(src string) (string, error) {
	iterator, err := h.lexer.Tokenise(nil, src)
	if err != nil {
		return "", fmt.Errorf("failed to tokenise: %w", err)
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", fmt.Errorf("failed to format: %w", err)
	}

	return buf.String(), nil
}
