package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// OutputFormat selects how commands print results.
type OutputFormat string

// Supported output formats.
const (
	OutputTable  OutputFormat = "table"
	OutputJSON   OutputFormat = "json"
	OutputNDJSON OutputFormat = "ndjson"
	OutputYAML   OutputFormat = "yaml"
)

// tabPadding is the column gap of table output.
const tabPadding = 2

//nolint:gochecknoglobals // Lookup table for flag validation.
var validOutputFormats = []OutputFormat{OutputTable, OutputJSON, OutputNDJSON, OutputYAML}

// parseOutputFormat validates an --output value.
func parseOutputFormat(s string) (OutputFormat, error) {
	f := OutputFormat(s)
	if !slices.Contains(validOutputFormats, f) {
		return "", fmt.Errorf("unsupported output format: %s (valid: table, json, ndjson, yaml)", s)
	}
	return f, nil
}

// newPrinter returns the printer used for human-readable numbers.
func newPrinter() *message.Printer {
	return message.NewPrinter(language.English)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeNDJSON writes each element of rows on its own line.
func writeNDJSON[T any](w io.Writer, rows []T) error {
	enc := json.NewEncoder(w)
	for _, r := range rows {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
