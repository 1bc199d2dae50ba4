package render

import (
	"testing"

	"github.com/pktviz/pktviz/pkg/errors"
)

func TestConvertMissingBinaryIsCoded(t *testing.T) {
	// With an empty PATH the converter cannot be found; the failure must
	// surface as UNSUPPORTED, not as a generic error.
	t.Setenv("PATH", "")

	if _, err := ToPDF([]byte("<svg/>")); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPDF without converter = %v, want code %s", err, errors.ErrCodeUnsupported)
	}
	if _, err := ToPNG([]byte("<svg/>"), 2.0); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPNG without converter = %v, want code %s", err, errors.ErrCodeUnsupported)
	}
}
