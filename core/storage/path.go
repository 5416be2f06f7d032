package storage

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
)

// DefaultPathPrefix is the storage path prefix used for processed assets.
const DefaultPathPrefix = "processed"

// GeneratePath derives the storage key for a source URL:
// <prefix>/<year>/<month>/<day>/<md5-of-url>.jpg, dated with the current UTC
// day. The digest covers the URL string itself, not the content behind it,
// so the key buckets blobs by origin and day rather than addressing content.
// The same URL maps to the same key within a UTC day and to a different key
// across days.
func GeneratePath(sourceURL, prefix string) string {
	now := time.Now().UTC()
	hash := md5.Sum([]byte(sourceURL))

	return fmt.Sprintf("%s/%d/%02d/%02d/%s.jpg",
		prefix, now.Year(), int(now.Month()), now.Day(), hex.EncodeToString(hash[:]))
}
