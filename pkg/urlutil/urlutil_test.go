package urlutil

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildQuery(t *testing.T) {
	query := BuildQuery(map[string]string{"a": "1", "b": "x y"})

	if query != "a=1&b=x%20y" {
		t.Errorf("Expected a=1&b=x%%20y, got %s", query)
	}
}

func TestBuildQuery_Empty(t *testing.T) {
	if query := BuildQuery(nil); query != "" {
		t.Errorf("Expected empty string, got %q", query)
	}
	if query := BuildQuery(map[string]string{}); query != "" {
		t.Errorf("Expected empty string, got %q", query)
	}
}

func TestBuildQuery_EncodesBothSides(t *testing.T) {
	query := BuildQuery(map[string]string{"a key": "v&1=2"})

	if query != "a%20key=v%261%3D2" {
		t.Errorf("Expected both key and value encoded, got %s", query)
	}
}

func TestBuildQuery_SortedKeys(t *testing.T) {
	query := BuildQuery(map[string]string{"z": "1", "a": "2", "m": "3"})

	if query != "a=2&m=3&z=1" {
		t.Errorf("Expected sorted key order, got %s", query)
	}
}

func TestParse(t *testing.T) {
	components, err := Parse("https://example.com:8080/p?q=1")
	if err != nil {
		t.Fatalf("Error parsing URL: %v", err)
	}

	expected := map[string]string{
		"scheme": "https",
		"host":   "example.com",
		"path":   "/p",
		"query":  "q=1",
		"port":   "8080",
	}
	for key, want := range expected {
		if got, ok := components[key]; !ok || got != want {
			t.Errorf("Expected %s=%s, got %q (present=%v)", key, want, got, ok)
		}
	}
	if len(components) != len(expected) {
		t.Errorf("Expected %d components, got %v", len(expected), components)
	}
}

func TestParse_OmitsAbsentComponents(t *testing.T) {
	components, err := Parse("https://example.com/p")
	if err != nil {
		t.Fatalf("Error parsing URL: %v", err)
	}

	if _, ok := components["query"]; ok {
		t.Error("Expected no query key when the URL has no query")
	}
	if _, ok := components["port"]; ok {
		t.Error("Expected no port key when the URL has no explicit port")
	}
}

func TestParse_HostOnly(t *testing.T) {
	components, err := Parse("https://example.com")
	if err != nil {
		t.Fatalf("Error parsing URL: %v", err)
	}

	if components["path"] != "/" {
		t.Errorf("Expected path / for host-only URL, got %q", components["path"])
	}
	if components["host"] != "example.com" {
		t.Errorf("Expected host example.com, got %q", components["host"])
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, raw := range []string{"not a url", "", "/relative/path", "example.com/p"} {
		_, err := Parse(raw)
		if err == nil {
			t.Errorf("Expected error for %q", raw)
			continue
		}

		var invalid *InvalidURLError
		if !errors.As(err, &invalid) {
			t.Errorf("Expected InvalidURLError for %q, got %T: %v", raw, err, err)
		}
		if !strings.HasPrefix(err.Error(), "invalid URL: ") {
			t.Errorf("Expected message prefix, got %q", err.Error())
		}
	}
}
