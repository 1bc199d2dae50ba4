package pipeline

import (
	"context"
	"os"
	"strings"

	"github.com/pktviz/pktviz/pkg/diagram"
	"github.com/pktviz/pktviz/pkg/errors"
	"github.com/pktviz/pktviz/pkg/httputil"
)

// Parse reads the diagram source and parses it into a diagram.
func Parse(ctx context.Context, opts Options) (*diagram.Diagram, error) {
	src, err := readSource(ctx, opts)
	if err != nil {
		return nil, err
	}
	return diagram.Parse(strings.NewReader(src))
}

// readSource returns the diagram text. SourcePath may be a local file or
// an http(s) URL.
func readSource(ctx context.Context, opts Options) (string, error) {
	if opts.SourcePath == "" {
		return opts.Source, nil
	}

	if httputil.IsURL(opts.SourcePath) {
		data, err := httputil.Fetch(ctx, opts.SourcePath)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := os.ReadFile(opts.SourcePath)
	if os.IsNotExist(err) {
		return "", errors.New(errors.ErrCodeFileNotFound, "diagram file not found: %s", opts.SourcePath)
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", opts.SourcePath)
	}
	return string(data), nil
}
