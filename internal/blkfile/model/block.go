// Package model defines records decoded from blk files and the rows persisted from them.
package model

import (
	"encoding/hex"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// HashSize is the byte length of block and transaction hashes.
const HashSize = chainhash.HashSize

// Hash is a 32-byte hash in display order, i.e. reversed relative to the wire.
type Hash [HashSize]byte

// HashFromWire reverses a wire-order hash into display order.
func HashFromWire(b []byte) Hash {
	var h Hash
	for i := 0; i < HashSize && i < len(b); i++ {
		h[i] = b[len(b)-1-i]
	}
	return h
}

// HashFromChainhash converts a btcd hash, which is kept in wire order, into display order.
func HashFromChainhash(c chainhash.Hash) Hash {
	return HashFromWire(c[:])
}

// String returns the lowercase hex form.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// IsZero reports whether every byte is zero.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// Script is an opaque, length-prefixed byte sequence. It is never interpreted.
type Script []byte

// String returns the lowercase hex form.
func (s Script) String() string {
	return hex.EncodeToString(s)
}

// BlockHeader is the fixed part of a block record, including the 8-byte file prefix.
type BlockHeader struct {
	Magic      uint32
	Size       uint32
	Version    uint32
	PrevBlock  Hash
	MerkleRoot Hash
	Timestamp  uint32
	Bits       uint32
	Nonce      uint32
}

// Time returns the header timestamp in UTC.
func (h BlockHeader) Time() time.Time {
	return time.Unix(int64(h.Timestamp), 0).UTC()
}

// Block is one decoded block together with its position in the file.
type Block struct {
	Header       BlockHeader
	Hash         Hash
	Transactions []Transaction
	// Offset is the file offset of the magic value.
	Offset uint64
	// TotalSize is the declared size plus the 8-byte prefix; the next block starts at Offset+TotalSize.
	TotalSize uint64
	// Walked is the number of bytes the field walk consumed, prefix included.
	Walked uint64
	// SuspectedWitness counts transactions read with a zero input count while witness parsing was off.
	SuspectedWitness int
}

// TrailingBytes returns how many declared payload bytes the field walk left unread.
func (b *Block) TrailingBytes() uint64 {
	if b.Walked >= b.TotalSize {
		return 0
	}
	return b.TotalSize - b.Walked
}

// NextOffset returns the offset where the following block begins.
func (b *Block) NextOffset() uint64 {
	return b.Offset + b.TotalSize
}
