package render

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/pktviz/pktviz/pkg/errors"
)

// converterBin is the external rasterizer the PNG and PDF sinks depend on.
// It ships as librsvg (brew install librsvg / apt install librsvg2-bin).
const converterBin = "rsvg-convert"

// ToPDF converts a rendered SVG document to PDF.
func ToPDF(svg []byte) ([]byte, error) {
	return rsvgConvert(svg, "pdf")
}

// ToPNG converts a rendered SVG document to PNG at the given scale factor.
// A scale of 2.0 doubles the pixel dimensions of the diagram frame.
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return rsvgConvert(svg, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// rsvgConvert pipes svg through the external converter. A missing binary is
// reported as UNSUPPORTED so callers can tell it apart from a bad diagram.
func rsvgConvert(svg []byte, format string, extraArgs ...string) ([]byte, error) {
	if _, err := exec.LookPath(converterBin); err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s output requires %s (install librsvg: brew install librsvg, or apt install librsvg2-bin)",
			format, converterBin)
	}

	args := append([]string{"-f", format}, extraArgs...)
	cmd := exec.Command(converterBin, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err,
			"%s: %s", converterBin, errBuf.String())
	}
	return out.Bytes(), nil
}
