package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Output formats accepted by --format.
const (
	formatJSON     = "json"
	formatText     = "text"
	formatMarkdown = "markdown"
)

var validFormats = map[string]bool{formatJSON: true, formatText: true, formatMarkdown: true}

// outputFlags select where and how results are written.
type outputFlags struct {
	format string // json, text or markdown
	path   string // Output file; stdout when empty
}

func (f *outputFlags) register(fs *pflag.FlagSet, defaultFormat string) {
	fs.StringVar(&f.format, "format", defaultFormat, "Output format (json, text, markdown)")
	fs.StringVarP(&f.path, "output", "o", "", "Write output to this file instead of stdout")
}

func (f *outputFlags) validate() error {
	if !validFormats[f.format] {
		return fmt.Errorf("unknown format %q (valid: json, text, markdown)", f.format)
	}
	return nil
}

// open returns the destination writer and a close function that reports the
// file's close error.
func (f *outputFlags) open(cmd *cobra.Command) (io.Writer, func() error, error) {
	if f.path == "" || f.path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	file, err := os.Create(f.path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return file, file.Close, nil
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
