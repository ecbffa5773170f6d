package model

import "math"

// Transaction is a decoded transaction record.
type Transaction struct {
	Version uint32
	// WitnessFlag holds the flag byte following the segwit marker; zero when absent or not parsed.
	WitnessFlag uint8
	Inputs      []TxInput
	Outputs     []TxOutput
	LockTime    uint32

	TxID     Hash
	Size     uint32
	BaseSize uint32
}

// HasWitness reports whether the transaction was serialized with witness data.
func (t Transaction) HasWitness() bool {
	return t.WitnessFlag != 0
}

// VSize returns the virtual size: weight divided by four, rounded up.
func (t Transaction) VSize() uint32 {
	weight := uint64(t.BaseSize)*3 + uint64(t.Size)
	return uint32((weight + 3) / 4)
}

// TxInput references an output of a previous transaction.
type TxInput struct {
	PrevTxHash Hash
	PrevIndex  uint32
	Script     Script
	Sequence   uint32
	Witness    [][]byte
}

// IsCoinbase reports whether the input is the null outpoint of a coinbase transaction.
func (in TxInput) IsCoinbase() bool {
	return in.PrevIndex == math.MaxUint32 && in.PrevTxHash.IsZero()
}

// TxOutput carries a value in the smallest unit and its locking script.
type TxOutput struct {
	Value  uint64
	Script Script
}
