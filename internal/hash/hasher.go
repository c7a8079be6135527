package hash

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

const bufferSize = 32 * 1024 // 32KB buffer for streaming

// Writer accumulates the xxHash of everything written to it, so a listing
// can be fingerprinted without holding it in memory.
type Writer struct {
	digest *xxhash.Digest
}

func NewWriter() *Writer {
	return &Writer{digest: xxhash.New()}
}

func (w *Writer) Write(p []byte) (int, error) {
	return w.digest.Write(p)
}

// Hex returns the hash of the bytes written so far.
func (w *Writer) Hex() string {
	return hex.EncodeToString(w.digest.Sum(nil))
}

// HashReader computes the xxHash of r, reading it in fixed-size chunks
func HashReader(r io.Reader) (string, error) {
	w := NewWriter()
	buf := make([]byte, bufferSize)

	if _, err := io.CopyBuffer(w, r, buf); err != nil {
		return "", fmt.Errorf("failed to read: %w", err)
	}

	return w.Hex(), nil
}

// HashFile computes the xxHash of a saved listing file
func HashFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	sum, err := HashReader(file)
	if err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return sum, nil
}
