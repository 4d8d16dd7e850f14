package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Formatter abstracts output formatting.
type Formatter interface {
	Write(w io.Writer, payload any) error
	ContentType() string
}

// JSONFormatter writes JSON output.
type JSONFormatter struct {
	Indent bool
}

// Write writes JSON payload to a writer.
func (f JSONFormatter) Write(w io.Writer, payload any) error {
	enc := json.NewEncoder(w)
	if f.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(payload)
}

func (f JSONFormatter) ContentType() string {
	return "application/json"
}

// YAMLFormatter writes YAML output.
type YAMLFormatter struct{}

// Write writes YAML payload to a writer.
func (f YAMLFormatter) Write(w io.Writer, payload any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(payload); err != nil {
		return err
	}
	return enc.Close()
}

func (f YAMLFormatter) ContentType() string {
	return "application/yaml"
}

// ByName returns the formatter for "json" or "yaml". Empty selects JSON.
func ByName(name string) (Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return JSONFormatter{Indent: true}, nil
	case "yaml", "yml":
		return YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format %q (expected json or yaml)", name)
	}
}

// Decode reads a JSON or YAML document into dst.
func Decode(name string, r io.Reader, dst any) error {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return json.NewDecoder(r).Decode(dst)
	case "yaml", "yml":
		return yaml.NewDecoder(r).Decode(dst)
	default:
		return fmt.Errorf("unsupported format %q (expected json or yaml)", name)
	}
}
