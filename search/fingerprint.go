package search

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strconv"
	"strings"

	"github.com/jonwraymond/vibematch/semantic"
)

// computeFingerprint generates a stable hash of the document slice.
// The fingerprint changes when indexed content changes, enabling
// efficient cache invalidation for the bleve index. Embeddings are not
// indexed and do not contribute.
func computeFingerprint(docs []semantic.Document) string {
	h := sha256.New()

	h.Write([]byte(strconv.Itoa(len(docs))))
	h.Write([]byte{0})

	for _, doc := range docs {
		h.Write([]byte(doc.ID))
		h.Write([]byte{0}) // separator

		h.Write([]byte(doc.Name))
		h.Write([]byte{0})
		h.Write([]byte(doc.Description))
		h.Write([]byte{0})

		// Sort a copy so tag order does not affect the fingerprint
		tags := slices.Clone(doc.Tags)
		slices.Sort(tags)
		h.Write([]byte(strings.Join(tags, "\x01")))
		h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}
