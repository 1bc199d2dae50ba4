// Package cache provides content-addressed caching for pipeline results.
//
// Rendering a diagram involves three cacheable stages: the parsed diagram,
// the computed layout, and the rendered artifacts. Each stage's result is
// keyed by a hash of its input plus the options that affect it, so a change
// anywhere upstream invalidates everything downstream.
//
// Backends:
//   - FileCache: per-user cache directory, used by the CLI
//   - RedisCache: shared cache for serve-mode deployments
//   - MongoCache: document-store cache for deployments that already run Mongo
//   - NullCache: caching disabled
package cache

import (
	"context"
	"time"
)

// TTLs per pipeline stage. Diagrams and layouts are deterministic functions
// of their inputs, so the TTLs exist only to bound cache growth.
const (
	TTLDiagram  = 30 * 24 * time.Hour
	TTLLayout   = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return value reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts are the options that affect layout computation.
type LayoutKeyOpts struct {
	BitsPerRow int
	BitWidth   int
	RowHeight  int
	PaddingX   int
	PaddingY   int
	ShowBits   bool
}

// ArtifactKeyOpts are the options that affect artifact rendering.
type ArtifactKeyOpts struct {
	Format   string
	Style    string
	VizType  string
	Detailed bool
	Scale    float64
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// DiagramKey keys a parsed diagram by its source hash.
	DiagramKey(sourceHash string) string

	// LayoutKey keys a computed layout by diagram hash and layout options.
	LayoutKey(diagramHash string, opts LayoutKeyOpts) string

	// ArtifactKey keys a rendered artifact by layout hash and render options.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer generates hashed, prefixed cache keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DiagramKey generates a key for a parsed diagram.
func (k *DefaultKeyer) DiagramKey(sourceHash string) string {
	return hashKey("diagram", sourceHash)
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(diagramHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", diagramHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
