package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Output modes
const (
	Text = "text"
	JSON = "json"
)

// Result is the outcome of checksumming one named input
type Result struct {
	Name      string `json:"name"`
	Algorithm string `json:"algorithm"`
	Checksum  string `json:"checksum,omitempty"`
	Error     string `json:"error,omitempty"`
}

var errColor = color.New(color.FgRed)

// Write prints a result to w. Text mode mirrors the sha1sum layout of
// "<checksum>  <name>"; JSON mode writes one object per line.
func Write(w io.Writer, mode string, r Result) error {
	switch mode {
	case JSON:
		return json.NewEncoder(w).Encode(r)
	case Text, "":
		if r.Error != "" {
			_, err := errColor.Fprintf(w, "%s: %s\n", r.Name, r.Error)
			return err
		}
		if r.Name == "" {
			_, err := fmt.Fprintln(w, r.Checksum)
			return err
		}
		_, err := fmt.Fprintf(w, "%s  %s\n", r.Checksum, r.Name)
		return err
	}
	return fmt.Errorf("Unknown output mode: %s", mode)
}
