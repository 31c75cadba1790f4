package slugid

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"sync"
)

// ErrRandomness is returned when a Source cannot supply the requested bytes.
// No identifier is ever built from a buffer that was not completely filled.
var ErrRandomness = errors.New("could not generate random values")

// Source fills buffers with cryptographically secure random bytes.
// Fill either fills every byte of buf or returns an error.
type Source interface {
	Fill(buf []byte) error
}

type readerSource struct {
	r io.Reader
}

// ReaderSource adapts r to a Source. A short read is reported as a failure.
func ReaderSource(r io.Reader) Source {
	return &readerSource{r: r}
}

func (s *readerSource) Fill(buf []byte) error {
	if _, err := io.ReadFull(s.r, buf); err != nil {
		return fmt.Errorf("read %d random bytes: %w", len(buf), err)
	}
	return nil
}

// NewSystemSource returns a Source backed by the operating system CSPRNG.
func NewSystemSource() Source {
	return ReaderSource(rand.Reader)
}

var defaultSource = sync.OnceValue(NewSystemSource)

// Default returns the process-wide system Source, creating it on first use.
func Default() Source {
	return defaultSource()
}
