// Package varint implements the ledger's variable-length integer: a marker byte below 0xFD is
// the value itself, while 0xFD, 0xFE and 0xFF announce a following 2, 4 or 8 byte value.
package varint

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/pkg/bytesource"
)

const (
	prefix16 = 0xFD
	prefix32 = 0xFE
	prefix64 = 0xFF
)

// Read decodes one varint from src. Non-minimal encodings are accepted as-is.
func Read(src *bytesource.Source, order binary.ByteOrder) (uint64, error) {
	marker, err := src.ReadUint8()
	if err != nil {
		return 0, fmt.Errorf("read varint marker: %w", err)
	}

	switch marker {
	case prefix16:
		v, err := src.ReadUint16(order)
		if err != nil {
			return 0, fmt.Errorf("read varint 0x%02x payload: %w", marker, err)
		}
		return uint64(v), nil
	case prefix32:
		v, err := src.ReadUint32(order)
		if err != nil {
			return 0, fmt.Errorf("read varint 0x%02x payload: %w", marker, err)
		}
		return uint64(v), nil
	case prefix64:
		v, err := src.ReadUint64(order)
		if err != nil {
			return 0, fmt.Errorf("read varint 0x%02x payload: %w", marker, err)
		}
		return v, nil
	default:
		return uint64(marker), nil
	}
}

// Append appends the minimal encoding of v to dst.
func Append(dst []byte, v uint64, order binary.ByteOrder) []byte {
	switch {
	case v < prefix16:
		return append(dst, byte(v))
	case v <= math.MaxUint16:
		dst = append(dst, prefix16, 0, 0)
		order.PutUint16(dst[len(dst)-2:], uint16(v))
	case v <= math.MaxUint32:
		dst = append(dst, prefix32, 0, 0, 0, 0)
		order.PutUint32(dst[len(dst)-4:], uint32(v))
	default:
		dst = append(dst, prefix64, 0, 0, 0, 0, 0, 0, 0, 0)
		order.PutUint64(dst[len(dst)-8:], v)
	}
	return dst
}

// Size returns the number of bytes Append uses for v: 1, 3, 5 or 9.
func Size(v uint64) uint64 {
	switch {
	case v < prefix16:
		return 1
	case v <= math.MaxUint16:
		return 3
	case v <= math.MaxUint32:
		return 5
	default:
		return 9
	}
}
