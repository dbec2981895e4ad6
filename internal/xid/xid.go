package xid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

func New(prefix string) string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
	}
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixNano(), hex.EncodeToString(buf))
}

// Imported builds the id for the index-th row of a bulk import. The index
// suffix keeps ids unique when many rows land in the same millisecond, and
// the prefix marks the record's provenance.
func Imported(index int) string {
	return fmt.Sprintf("imported-%d-%d", time.Now().UnixMilli(), index)
}
