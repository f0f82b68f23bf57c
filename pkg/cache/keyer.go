package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Keyer derives cache keys.
type Keyer interface {
	// RenderKey is the key of a rendered document.
	RenderKey(docHash string, opts RenderKeyOpts) string
	// StoredKey is the key of a render stored under an id.
	StoredKey(id string) string
}

// RenderKeyOpts are the render options that change the output.
type RenderKeyOpts struct {
	Format      string  `json:"format"`
	Width       float32 `json:"width"`
	Height      float32 `json:"height"`
	Padding     float32 `json:"padding"`
	LabelHeight float32 `json:"label_height"`
	Flow        string  `json:"flow"`
	Background  uint32  `json:"background"`
	Selection   bool    `json:"selection"`

	SelectionColor uint32 `json:"selection_color,omitempty"`
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// RenderKey implements Keyer.
func (DefaultKeyer) RenderKey(docHash string, opts RenderKeyOpts) string {
	return hashKey("render", docHash, opts)
}

// StoredKey implements Keyer.
func (DefaultKeyer) StoredKey(id string) string {
	return "stored:" + id
}

// Hash returns the hex SHA-256 digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey joins prefix and the digest of the JSON encoding of parts.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}
