package validation

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
)

const checksumChunkSize = 4096

// Checksum computes an MD5 hex digest over the full content, read in fixed
// size chunks so large files never need full buffering twice. The digest is
// used purely for deduplication, not integrity.
func Checksum(r io.Reader) (string, error) {
	hasher := md5.New()
	buf := make([]byte, checksumChunkSize)

	for {
		n, err := r.Read(buf)
		if n > 0 {
			hasher.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to read content for checksum: %w", err)
		}
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
