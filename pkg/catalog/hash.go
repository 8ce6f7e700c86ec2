package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns a SHA-256 hex digest of the catalog's JSON encoding.
// Equal catalogs (including course order) hash equally.
func Hash(c *Catalog) string {
	data, _ := json.Marshal(c)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
