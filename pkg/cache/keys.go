package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// ArtifactKeyOpts are the render options that change artifact bytes.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	Detailed bool    `json:"detailed,omitempty"`
	Title    string  `json:"title,omitempty"`
	Scale    float64 `json:"scale,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key for an artifact rendered from the layout
	// with the given hash.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// artifactNamespace is the leading segment of every artifact key.
const artifactNamespace = "artifact"

// DefaultKeyer builds unprefixed keys of the form "artifact:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key builder.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey digests the layout hash together with the options.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	payload, _ := json.Marshal(struct {
		Layout string          `json:"layout"`
		Opts   ArtifactKeyOpts `json:"opts"`
	}{layoutHash, opts})
	return artifactNamespace + ":" + Hash(payload)
}

// ScopedKeyer prepends a fixed prefix to the keys of another Keyer so that
// several catalogs or deployments can share one backend, e.g.
//
//	csKeyer := NewScopedKeyer(NewDefaultKeyer(), "dept:cs:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner (DefaultKeyer when nil) with prefix.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return ScopedKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey returns the inner key with the scope prefix.
func (k ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}

// Hash returns the hex SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
