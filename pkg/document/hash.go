package document

import (
	"encoding/json"

	"github.com/avulnerador/RogueMap-Gen/pkg/cache"
)

// Hash returns the SHA-256 of the document's compact JSON encoding as 64
// hex characters. Equal documents hash equally, so the value works as an
// HTTP entity tag and as the artifact cache key.
func Hash(d Document) (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return cache.Hash(data), nil
}
