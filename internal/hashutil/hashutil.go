package hashutil

import (
	"crypto/sha256"
	"fmt"
)

// SnapshotID derives the 7-character hex ID of an archived week from its
// archive date and its position in the archive. The same entry always gets
// the same ID, and two resets on one day get different IDs.
func SnapshotID(date string, seq int) string {
	return GenerateIDFromSeed(fmt.Sprintf("%s\x00%d", date, seq))
}

// GenerateIDFromSeed creates a deterministic 7-character hex ID from a seed string.
func GenerateIDFromSeed(seed string) string {
	hash := sha256.Sum256([]byte(seed))
	return fmt.Sprintf("%x", hash[:4])[:7]
}
