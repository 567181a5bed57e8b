package serialization

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// ComputeChecksum returns the xxhash64 digest of data.
func ComputeChecksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// ComputeChecksumReader hashes r without loading it into memory.
func ComputeChecksumReader(r io.Reader) (uint64, error) {
	d := xxhash.New()
	if _, err := io.Copy(d, r); err != nil {
		return 0, err
	}
	return d.Sum64(), nil
}

// ChecksumFile hashes the file at path.
func ChecksumFile(path string) (uint64, error) {
	//nolint:gosec // G304: File path comes from user input
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return ComputeChecksumReader(f)
}
