// Package output provides common output formatting utilities.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// JSON writes indented JSON to w.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Table creates an aligned table writer.
// Remember to call Flush() when done writing.
func Table(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// Console prints the messages of a command.
//
// Raw messages are command results and always go to Out. Info messages are
// progress notes prefixed with the command name and dropped when Silent is
// set. Errors go to Err.
type Console struct {
	Name   string
	Silent bool
	Out    io.Writer
	Err    io.Writer
}

// Raw prints a message as is.
func (c *Console) Raw(format string, args ...any) {
	_, _ = fmt.Fprintf(c.Out, format+"\n", args...)
}

// Info prints "<name>: <message>" unless the console is silent.
func (c *Console) Info(format string, args ...any) {
	if c.Silent {
		return
	}
	_, _ = fmt.Fprintf(c.Out, "%s: %s\n", c.Name, fmt.Sprintf(format, args...))
}

// Error prints "<name>: Error: <message>" to Err, even when silent.
func (c *Console) Error(err error) {
	_, _ = fmt.Fprintf(c.Err, "%s: Error: %v\n", c.Name, err)
}
