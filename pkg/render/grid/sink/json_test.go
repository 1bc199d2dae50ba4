package sink

import (
	"encoding/json"
	"testing"
)

func TestRenderJSONRoundTrip(t *testing.T) {
	l := udpLayout(t)

	data, err := RenderJSON(l, WithJSONStyle("classic"))
	if err != nil {
		t.Fatalf("RenderJSON failed: %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if out.Style != "classic" {
		t.Errorf("Style = %q, want classic", out.Style)
	}
	if out.BitsPerRow != 32 {
		t.Errorf("BitsPerRow = %d, want 32", out.BitsPerRow)
	}
	if len(out.Cells) != 4 {
		t.Errorf("got %d cells, want 4", len(out.Cells))
	}
	if out.Title != "UDP Packet" {
		t.Errorf("Title = %q", out.Title)
	}
}
