package decoder

import (
	"errors"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/pkg/bytesource"
)

var (
	// ErrBadMagic means the sentinel at a presumed block boundary did not match; nothing after it in the file is decoded.
	ErrBadMagic = errors.New("bad block magic")
	// ErrZeroPadding accompanies ErrBadMagic when the magic read is zero, as in the space a node preallocates past its last block.
	ErrZeroPadding = errors.New("zero padding")
	// ErrShortPrefix accompanies ErrTruncatedInput when the data ends inside the magic or the declared size.
	ErrShortPrefix = errors.New("short block prefix")
	// ErrTruncatedInput means a field needed more bytes than were left.
	ErrTruncatedInput = bytesource.ErrTruncatedInput
	// ErrTruncatedBlock means the declared block size runs past the end of the file.
	ErrTruncatedBlock = errors.New("truncated block")
	// ErrSizeMismatch means the field walk did not end exactly at the declared block size (strict mode only).
	ErrSizeMismatch = errors.New("block size mismatch")
	// ErrBadWitnessFlag means a segwit marker was followed by a flag other than 0x01.
	ErrBadWitnessFlag = errors.New("bad witness flag")
)

// ErrorKind classifies a decode error into a short label for logs and metrics.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrBadMagic):
		return "bad_magic"
	case errors.Is(err, ErrTruncatedBlock):
		return "truncated_block"
	case errors.Is(err, ErrSizeMismatch):
		return "size_mismatch"
	case errors.Is(err, ErrBadWitnessFlag):
		return "witness"
	case errors.Is(err, ErrTruncatedInput):
		return "truncated_input"
	default:
		return "io"
	}
}
