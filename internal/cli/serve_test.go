package cli

import (
	"strings"
	"testing"

	"github.com/pktviz/pktviz/pkg/cache"
)

func TestServeKeyerNamespacesKeys(t *testing.T) {
	plain := serveKeyer("").DiagramKey("abc")
	scoped := serveKeyer("staging").DiagramKey("abc")

	if !strings.HasPrefix(scoped, "staging:") {
		t.Errorf("scoped key %q should carry the namespace prefix", scoped)
	}
	if scoped != "staging:"+plain {
		t.Errorf("scoped key %q should wrap the default key %q", scoped, plain)
	}
	if got := cache.NewDefaultKeyer().DiagramKey("abc"); plain != got {
		t.Errorf("empty namespace key %q should match the default keyer %q", plain, got)
	}
}
