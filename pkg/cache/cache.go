// Package cache provides pluggable byte caches for expensive pipeline
// stages.
//
// Four backends share one interface: a file cache for CLI usage, Redis and
// MongoDB caches for server deployments, and a null cache that disables
// caching entirely. Keys are derived from content hashes, so identical
// inputs hit the cache regardless of where or when they were computed.
package cache

import (
	"context"
	"time"
)

// Cache is the minimal byte cache contract shared by all backends.
// Get returns (data, found, error); a miss is not an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Default TTLs per cached stage. Layouts are pure functions of their input
// text, so they could live forever; the TTLs bound disk and store growth,
// not correctness.
const (
	// TTLLayout applies to computed layout documents.
	TTLLayout = 7 * 24 * time.Hour

	// TTLArtifact applies to rendered output documents (SVG, PNG, DOT).
	TTLArtifact = 24 * time.Hour
)

// LayoutKeyOpts captures every input that changes a computed layout.
type LayoutKeyOpts struct {
	Kind string // layout engine kind
}

// ArtifactKeyOpts captures every input that changes a rendered document.
type ArtifactKeyOpts struct {
	Format string // output format
}

// Keyer generates cache keys for the pipeline stages. Implementations must
// be deterministic: equal inputs yield equal keys.
type Keyer interface {
	// LayoutKey generates a key for a computed layout, from the hash of the
	// source outline text and the layout options.
	LayoutKey(outlineHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered document, from the hash of
	// the serialized layout and the render options.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme: a stage prefix plus a SHA-256
// over the JSON-encoded inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(outlineHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", outlineHash, opts.Kind)
}

// ArtifactKey generates a key for a rendered document.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts.Format)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
