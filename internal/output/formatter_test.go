package output

import (
	"errors"
	"strings"
	"testing"

	trunkhttp "github.com/trunkhttp/trunk/http"
)

func TestFormatRequest(t *testing.T) {
	req := trunkhttp.NewRequest("post", "https://api.example.com/users").
		WithHeader("Accept", "application/json").
		WithBody(`{"name":"alice"}`)

	f := NewFormatter(true, true)
	out := f.FormatRequest(req)

	if !strings.Contains(out, "POST https://api.example.com/users") {
		t.Errorf("Expected uppercased method and URL, got %q", out)
	}
	if !strings.Contains(out, "Accept: application/json") {
		t.Errorf("Expected header line, got %q", out)
	}
	if !strings.Contains(out, `"name"`) {
		t.Errorf("Expected body, got %q", out)
	}
}

func TestFormatRequest_NoBody(t *testing.T) {
	req := trunkhttp.NewRequest("GET", "https://example.com")

	out := NewFormatter(false, true).FormatRequest(req)

	if strings.Contains(out, "Body:") {
		t.Errorf("Expected no body section, got %q", out)
	}
}

func TestFormatResponse(t *testing.T) {
	resp := trunkhttp.NewResponse(200,
		map[string]string{"Content-Type": "application/json"},
		`{"message":"success"}`)

	out := NewFormatter(true, true).FormatResponse(resp)

	if !strings.Contains(out, "200 OK") {
		t.Errorf("Expected status line, got %q", out)
	}
	if !strings.Contains(out, "content-type: application/json") {
		t.Errorf("Expected normalized header line, got %q", out)
	}
	if !strings.Contains(out, `"message"`) {
		t.Errorf("Expected body, got %q", out)
	}
}

func TestFormatResponse_NonVerboseOmitsHeaders(t *testing.T) {
	resp := trunkhttp.NewResponse(404, map[string]string{"X-Test": "1"}, "")

	out := NewFormatter(false, true).FormatResponse(resp)

	if !strings.Contains(out, "404 Not Found") {
		t.Errorf("Expected status line, got %q", out)
	}
	if strings.Contains(out, "x-test") {
		t.Errorf("Expected headers omitted, got %q", out)
	}
}

func TestFormatResult(t *testing.T) {
	f := NewFormatter(false, true)

	pass := f.FormatResult("list-users", nil)
	if !strings.Contains(pass, "✓ list-users") {
		t.Errorf("Expected pass marker, got %q", pass)
	}

	fail := f.FormatResult("create-user", errors.New("boom"))
	if !strings.Contains(fail, "✗ create-user: boom") {
		t.Errorf("Expected fail marker, got %q", fail)
	}
}
