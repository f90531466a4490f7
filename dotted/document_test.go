package dotted_test

import (
	"errors"
	"testing"

	"github.com/hasbyte1/go-nested-utils/dotted"
)

func TestFlattenYAML(t *testing.T) {
	data := []byte("db:\n  host: localhost\n  port: 5432\napp:\n  debug: true\n")
	flat, err := dotted.FlattenYAML(data)
	if err != nil {
		t.Fatalf("FlattenYAML returned error: %v", err)
	}
	if flat["db.host"] != "localhost" {
		t.Fatalf("db.host = %v; want localhost", flat["db.host"])
	}
	if flat["app.debug"] != true {
		t.Fatalf("app.debug = %v; want true", flat["app.debug"])
	}
}

func TestFlattenYAMLSeparator(t *testing.T) {
	flat, err := dotted.FlattenYAML([]byte("a:\n  b: 1\n"), dotted.WithSeparator("/"))
	if err != nil {
		t.Fatalf("FlattenYAML returned error: %v", err)
	}
	if _, ok := flat["a/b"]; !ok {
		t.Fatalf("FlattenYAML = %v; want a/b key", flat)
	}
}

func TestFlattenYAMLInvalid(t *testing.T) {
	for _, data := range []string{"- 1\n- 2\n", "just a scalar", "a: [unclosed"} {
		if _, err := dotted.FlattenYAML([]byte(data)); !errors.Is(err, dotted.ErrInvalidDocument) {
			t.Fatalf("FlattenYAML(%q) error = %v; want ErrInvalidDocument", data, err)
		}
	}
}

func TestFlattenJSON(t *testing.T) {
	flat, err := dotted.FlattenJSON([]byte(`{"a": {"b": 1, "c": {"d": "x"}}}`))
	if err != nil {
		t.Fatalf("FlattenJSON returned error: %v", err)
	}
	if flat["a.c.d"] != "x" {
		t.Fatalf("a.c.d = %v; want x", flat["a.c.d"])
	}
}

func TestFlattenJSONInvalid(t *testing.T) {
	if _, err := dotted.FlattenJSON([]byte(`[1, 2, 3]`)); !errors.Is(err, dotted.ErrInvalidDocument) {
		t.Fatalf("FlattenJSON array error = %v; want ErrInvalidDocument", err)
	}
}

func TestFlattenJSONRejectsYAML(t *testing.T) {
	// YAML that is not JSON must not slip through the JSON entry point.
	for _, data := range []string{"a: 1\n", "a:\n  b: x\n", ""} {
		if _, err := dotted.FlattenJSON([]byte(data)); !errors.Is(err, dotted.ErrInvalidDocument) {
			t.Fatalf("FlattenJSON(%q) error = %v; want ErrInvalidDocument", data, err)
		}
	}
}
