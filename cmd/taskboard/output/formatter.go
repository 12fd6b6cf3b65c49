package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents the output format type
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatFZF  Format = "fzf"
)

// Row is implemented by values that can be listed one per line for pickers like fzf
type Row interface {
	Fields() []string
}

// Formatter handles output formatting for different formats
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a new output formatter
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: writer,
	}
}

// Format returns the configured output format
func (f *Formatter) Format() Format {
	return f.format
}

// Structured reports whether the output is meant for machines (json or yaml)
func (f *Formatter) Structured() bool {
	return f.format == FormatJSON || f.format == FormatYAML
}

// Print outputs data in the configured format
func (f *Formatter) Print(data interface{}) error {
	switch f.format {
	case FormatJSON:
		return f.printJSON(data)
	case FormatYAML:
		return f.printYAML(data)
	case FormatText:
		return f.printText(data)
	case FormatFZF:
		return f.printFZF(data)
	default:
		return fmt.Errorf("unsupported output format: %s", f.format)
	}
}

// PrintRows writes one tab separated line per row. The id comes first so the
// line can be piped back into commands that take an id argument.
func (f *Formatter) PrintRows(rows []Row) error {
	for _, row := range rows {
		if _, err := fmt.Fprintln(f.writer, strings.Join(row.Fields(), "\t")); err != nil {
			return err
		}
	}
	return nil
}

// printJSON outputs data as JSON
func (f *Formatter) printJSON(data interface{}) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// printYAML outputs data as YAML
func (f *Formatter) printYAML(data interface{}) error {
	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(data)
}

// printText outputs data as plain text
func (f *Formatter) printText(data interface{}) error {
	switch v := data.(type) {
	case string:
		_, err := fmt.Fprintln(f.writer, v)
		return err
	case fmt.Stringer:
		_, err := fmt.Fprintln(f.writer, v.String())
		return err
	default:
		_, err := fmt.Fprintln(f.writer, v)
		return err
	}
}

func (f *Formatter) printFZF(data interface{}) error {
	switch v := data.(type) {
	case Row:
		return f.PrintRows([]Row{v})
	case []Row:
		return f.PrintRows(v)
	default:
		return f.printText(data)
	}
}

// ParseFormat converts a string to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "fzf":
		return FormatFZF, nil
	default:
		return FormatText, fmt.Errorf("invalid format '%s': must be one of: text, json, yaml, fzf", s)
	}
}
