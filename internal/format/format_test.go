package format

import (
	"bytes"
	"strings"
	"testing"
)

type sample struct {
	Name  string   `json:"name" yaml:"name"`
	Items []string `json:"items" yaml:"items"`
}

func TestByName(t *testing.T) {
	for _, name := range []string{"", "json", "JSON", "yaml", "yml"} {
		if _, err := ByName(name); err != nil {
			t.Fatalf("%q: unexpected error %v", name, err)
		}
	}
	if _, err := ByName("xml"); err == nil {
		t.Fatal("expected error for xml")
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := sample{Name: "Work", Items: []string{"a", "b"}}
	if err := (YAMLFormatter{}).Write(&buf, in); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), "name: Work") {
		t.Fatalf("unexpected yaml: %s", buf.String())
	}

	var out sample
	if err := Decode("yaml", &buf, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Name != "Work" || len(out.Items) != 2 {
		t.Fatalf("unexpected decode: %+v", out)
	}
}

func TestJSONIndent(t *testing.T) {
	var buf bytes.Buffer
	if err := (JSONFormatter{Indent: true}).Write(&buf, sample{Name: "x"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"name\"") {
		t.Fatalf("expected indented json, got %s", buf.String())
	}
	if (JSONFormatter{}).ContentType() != "application/json" {
		t.Fatal("unexpected content type")
	}
}
