package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/pktviz/pktviz/pkg/pipeline"
)

const udpSource = `packet-beta
title UDP Packet
0-15: "Source Port"
16-31: "Destination Port"
32-47: "Length"
48-63: "Checksum"
`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	runner := pipeline.NewRunner(nil, nil, logger)
	s := New(Config{}, runner, logger)
	srv := httptest.NewServer(s.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
}

func TestVersion(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/version")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["version"] == "" {
		t.Error("version is empty")
	}
}

func TestRenderSVG(t *testing.T) {
	srv := newTestServer(t)

	req, _ := json.Marshal(map[string]any{"source": udpSource})
	resp := postJSON(t, srv.URL+"/api/render", string(req))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q, want image/svg+xml", ct)
	}

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "<svg") {
		t.Error("response is not an SVG document")
	}
	if !strings.Contains(string(body), "Source Port") {
		t.Error("SVG missing field label")
	}
}

func TestRenderJSONFormat(t *testing.T) {
	srv := newTestServer(t)

	req, _ := json.Marshal(map[string]any{"source": udpSource, "format": "json"})
	resp := postJSON(t, srv.URL+"/api/render", string(req))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestRenderInvalidDiagram(t *testing.T) {
	srv := newTestServer(t)

	req, _ := json.Marshal(map[string]any{"source": "packet\n0-15: \"A\"\n20-31: \"B\"\n"})
	resp := postJSON(t, srv.URL+"/api/render", string(req))

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["code"] != "NON_CONTIGUOUS_BLOCK" {
		t.Errorf("code = %q, want NON_CONTIGUOUS_BLOCK", body["code"])
	}
}

func TestRenderInvalidFormat(t *testing.T) {
	srv := newTestServer(t)

	req, _ := json.Marshal(map[string]any{"source": udpSource, "format": "gif"})
	resp := postJSON(t, srv.URL+"/api/render", string(req))

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestRenderRejectsUnknownFields(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/render", `{"source": "packet", "bogus": 1}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestCheck(t *testing.T) {
	srv := newTestServer(t)

	req, _ := json.Marshal(map[string]any{"source": udpSource})
	resp := postJSON(t, srv.URL+"/api/check", string(req))

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Title != "UDP Packet" {
		t.Errorf("Title = %q, want UDP Packet", body.Title)
	}
	if len(body.Fields) != 4 {
		t.Errorf("got %d fields, want 4", len(body.Fields))
	}
	if body.TotalBits != 64 {
		t.Errorf("TotalBits = %d, want 64", body.TotalBits)
	}
	if body.Rows != 2 {
		t.Errorf("Rows = %d, want 2", body.Rows)
	}
}

func TestRequestIDEcho(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/healthz", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("X-Request-Id", "test-id-123")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("X-Request-Id"); got != "test-id-123" {
		t.Errorf("X-Request-Id = %q, want test-id-123", got)
	}
}

func TestRequestIDGenerated(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.Header.Get("X-Request-Id") == "" {
		t.Error("expected a generated X-Request-Id header")
	}
}
