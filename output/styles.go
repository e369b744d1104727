// Package output provides styling and table rendering helpers for
// terminal output.
package output

import (
	"io"

	"github.com/muesli/termenv"
)

// Styles provides styled output helpers for the CLI.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a new Styles instance for the given writer.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

// Income returns a styled income amount (green).
func (s *Styles) Income(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("2")).
		String()
}

// Expense returns a styled expense amount (red).
func (s *Styles) Expense(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("1")).
		String()
}

// Category returns a styled category label (yellow).
func (s *Styles) Category(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		String()
}

// FilePath returns a styled file path (cyan).
func (s *Styles) FilePath(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("6")).
		String()
}

// Warning returns a styled warning (yellow + bold).
func (s *Styles) Warning(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("3")).
		Bold().
		String()
}

// Keyword returns a styled keyword (bold).
func (s *Styles) Keyword(text string) string {
	return s.output.String(text).
		Bold().
		String()
}

// Dim returns dimmed text (for secondary information such as ids).
func (s *Styles) Dim(text string) string {
	return s.output.String(text).
		Faint().
		String()
}

// Output returns the underlying termenv Output for advanced usage.
func (s *Styles) Output() *termenv.Output {
	return s.output
}
