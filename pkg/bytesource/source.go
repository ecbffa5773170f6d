// Package bytesource provides a forward-only byte cursor with bounded fixed-width reads.
package bytesource

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrTruncatedInput reports that fewer bytes remain than a read requires.
var ErrTruncatedInput = errors.New("truncated input")

// Source is a sequential reader over a finite byte sequence of known length.
// It is not safe for concurrent use.
type Source struct {
	r         io.Reader
	remaining uint64
	consumed  uint64
	scratch   [8]byte
}

// New wraps r, which is expected to yield exactly size bytes.
func New(r io.Reader, size uint64) *Source {
	return &Source{r: r, remaining: size}
}

// NewAt is New for a reader already positioned offset bytes into a larger sequence.
// Consumed then reports absolute positions.
func NewAt(r io.Reader, offset, size uint64) *Source {
	return &Source{r: r, remaining: size, consumed: offset}
}

// FromBytes returns a Source over b.
func FromBytes(b []byte) *Source {
	return New(bytes.NewReader(b), uint64(len(b)))
}

// Remaining returns the number of bytes that can still be read.
func (s *Source) Remaining() uint64 {
	return s.remaining
}

// Consumed returns the cursor position: the starting offset plus the bytes read so far.
func (s *Source) Consumed() uint64 {
	return s.consumed
}

// ReadUint8 reads a single byte.
func (s *Source) ReadUint8() (uint8, error) {
	b, err := s.fill(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadUint16 reads two bytes in the given byte order.
func (s *Source) ReadUint16(order binary.ByteOrder) (uint16, error) {
	b, err := s.fill(2)
	if err != nil {
		return 0, err
	}
	return order.Uint16(b), nil
}

// ReadUint32 reads four bytes in the given byte order.
func (s *Source) ReadUint32(order binary.ByteOrder) (uint32, error) {
	b, err := s.fill(4)
	if err != nil {
		return 0, err
	}
	return order.Uint32(b), nil
}

// ReadUint64 reads eight bytes in the given byte order.
func (s *Source) ReadUint64(order binary.ByteOrder) (uint64, error) {
	b, err := s.fill(8)
	if err != nil {
		return 0, err
	}
	return order.Uint64(b), nil
}

// ReadExact reads exactly n bytes into a freshly allocated slice.
func (s *Source) ReadExact(n uint64) ([]byte, error) {
	if err := s.check(n); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if err := s.read(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (s *Source) fill(n int) ([]byte, error) {
	if err := s.check(uint64(n)); err != nil {
		return nil, err
	}
	b := s.scratch[:n]
	if err := s.read(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Source) check(n uint64) error {
	if n > s.remaining {
		return fmt.Errorf("%w: need %d bytes, %d remaining", ErrTruncatedInput, n, s.remaining)
	}
	return nil
}

func (s *Source) read(b []byte) error {
	got, err := io.ReadFull(s.r, b)
	s.advance(uint64(got))
	if err != nil {
		return truncated(uint64(len(b)), uint64(got), err)
	}
	return nil
}

func (s *Source) advance(n uint64) {
	s.consumed += n
	s.remaining -= n
}

func truncated(want, got uint64, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: short read %d of %d bytes", ErrTruncatedInput, got, want)
	}
	return fmt.Errorf("read %d bytes: %w", want, err)
}
