// Package decoder turns the length-prefixed block records of a blk file into model blocks.
package decoder

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/model"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/pkg/bytesource"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/pkg/varint"
)

const (
	// PrefixSize is the magic plus the declared size preceding every block payload.
	PrefixSize = 8
	// HeaderSize is the serialized block header length.
	HeaderSize = 80

	minTxSize      = 10 // version, two empty counts, lock time
	minInputSize   = 41 // outpoint, empty script, sequence
	minOutputSize  = 9  // value, empty script
	minWitnessItem = 1

	// markerEnd is where a segwit marker ends: the version plus a one-byte input count.
	markerEnd   = 5
	witnessFlag = 0x01
)

// WitnessMode selects how the segwit marker and flag are treated.
type WitnessMode int

const (
	// WitnessParse recognises the marker, reads the flag and walks witness stacks after the outputs.
	WitnessParse WitnessMode = iota
	// WitnessIgnore reads every transaction as a legacy one; a marker is taken as an input count of zero.
	WitnessIgnore
)

// Config customises a Decoder. The zero value decodes mainnet little-endian files with witness parsing.
type Config struct {
	// Magic is the expected block sentinel; zero selects mainnet.
	Magic uint32
	// Order applies to every fixed-width field and varint payload; nil selects little endian.
	Order      binary.ByteOrder
	Witness    WitnessMode
	StrictSize bool
	// Sink receives every field as it is read; nil disables tracing.
	Sink FieldSink
}

// Decoder reads one block record at a time. It holds no per-block state and may be shared.
type Decoder struct {
	magic      uint32
	order      binary.ByteOrder
	witness    WitnessMode
	strictSize bool
	sink       FieldSink
}

// New returns a Decoder configured by cfg.
func New(cfg Config) *Decoder {
	d := &Decoder{
		magic:      cfg.Magic,
		order:      cfg.Order,
		witness:    cfg.Witness,
		strictSize: cfg.StrictSize,
		sink:       cfg.Sink,
	}
	if d.magic == 0 {
		d.magic = MainNetMagic
	}
	if d.order == nil {
		d.order = binary.LittleEndian
	}
	return d
}

// DecodeBlock reads the block starting at the cursor of src. On success src is left exactly at
// the next block, i.e. declared size plus PrefixSize bytes later, and that count is returned.
func (d *Decoder) DecodeBlock(src *bytesource.Source) (*model.Block, uint64, error) {
	offset := src.Consumed()
	trace := d.sink != nil

	magic, err := src.ReadUint32(d.order)
	if err != nil {
		return nil, 0, prefixErr("read magic", err)
	}
	if trace {
		d.sink.Emit("block", zap.Stringer("magic", hex32(magic)))
	}
	if magic == 0 {
		return nil, 0, fmt.Errorf("%w: %w at offset %d", ErrBadMagic, ErrZeroPadding, offset)
	}
	if magic != d.magic {
		return nil, 0, fmt.Errorf("%w: got %08X, want %08X at offset %d", ErrBadMagic, magic, d.magic, offset)
	}

	size, err := src.ReadUint32(d.order)
	if err != nil {
		return nil, 0, prefixErr("read block size", err)
	}
	if trace {
		d.sink.Emit("block", zap.Uint32("size", size))
	}
	if uint64(size) > src.Remaining() {
		return nil, 0, fmt.Errorf("%w: declared size %d exceeds %d remaining bytes at offset %d",
			ErrTruncatedBlock, size, src.Remaining(), offset)
	}
	payload, err := src.ReadExact(uint64(size))
	if err != nil {
		return nil, 0, fmt.Errorf("read block payload: %w", err)
	}

	w := &blockWalker{
		d:       d,
		trace:   trace,
		payload: payload,
		src:     bytesource.FromBytes(payload),
	}
	block := &model.Block{
		Offset:    offset,
		TotalSize: uint64(size) + PrefixSize,
	}
	block.Header, err = w.header(magic, size)
	if err != nil {
		return nil, 0, fmt.Errorf("decode header of block at offset %d: %w", offset, err)
	}
	block.Hash = model.HashFromChainhash(chainhash.DoubleHashH(payload[:HeaderSize]))
	if trace {
		d.sink.Emit("block", zap.Stringer("hash", block.Hash))
	}

	block.Transactions, err = w.transactions()
	if err != nil {
		return nil, 0, fmt.Errorf("decode block %s at offset %d: %w", block.Hash, offset, err)
	}
	block.SuspectedWitness = w.suspectedWitness
	block.Walked = PrefixSize + w.src.Consumed()

	if rest := w.src.Remaining(); rest > 0 {
		if d.strictSize {
			return nil, 0, fmt.Errorf("%w: block %s at offset %d walked %d of %d declared bytes",
				ErrSizeMismatch, block.Hash, offset, w.src.Consumed(), size)
		}
		if trace {
			d.sink.Emit("block", zap.Uint64("trailing_bytes", rest))
		}
	}
	return block, block.TotalSize, nil
}

// blockWalker walks the fields of one in-memory block payload.
type blockWalker struct {
	d                *Decoder
	trace            bool
	payload          []byte
	src              *bytesource.Source
	suspectedWitness int
}

func (w *blockWalker) header(magic, size uint32) (model.BlockHeader, error) {
	h := model.BlockHeader{Magic: magic, Size: size}
	var err error
	if h.Version, err = w.src.ReadUint32(w.d.order); err != nil {
		return h, fmt.Errorf("read version: %w", err)
	}
	if h.PrevBlock, err = w.hash(); err != nil {
		return h, fmt.Errorf("read previous block hash: %w", err)
	}
	if h.MerkleRoot, err = w.hash(); err != nil {
		return h, fmt.Errorf("read merkle root: %w", err)
	}
	if h.Timestamp, err = w.src.ReadUint32(w.d.order); err != nil {
		return h, fmt.Errorf("read timestamp: %w", err)
	}
	if h.Bits, err = w.src.ReadUint32(w.d.order); err != nil {
		return h, fmt.Errorf("read bits: %w", err)
	}
	if h.Nonce, err = w.src.ReadUint32(w.d.order); err != nil {
		return h, fmt.Errorf("read nonce: %w", err)
	}
	if w.trace {
		w.d.sink.Emit("block",
			zap.Uint32("version", h.Version),
			zap.Stringer("prev_block", h.PrevBlock),
			zap.Stringer("merkle_root", h.MerkleRoot),
			zap.Time("timestamp", h.Time()),
			zap.Stringer("bits", hex32(h.Bits)),
			zap.Uint32("nonce", h.Nonce),
		)
	}
	return h, nil
}

func (w *blockWalker) transactions() ([]model.Transaction, error) {
	count, err := varint.Read(w.src, w.d.order)
	if err != nil {
		return nil, fmt.Errorf("read transaction count: %w", err)
	}
	if w.trace {
		w.d.sink.Emit("block", zap.Uint64("tx_count", count))
	}
	txs := make([]model.Transaction, 0, capHint(count, w.src.Remaining(), minTxSize))
	for i := uint64(0); i < count; i++ {
		tx, err := w.transaction(i)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func (w *blockWalker) transaction(position uint64) (model.Transaction, error) {
	var tx model.Transaction
	start := w.src.Consumed()

	var err error
	if tx.Version, err = w.src.ReadUint32(w.d.order); err != nil {
		return tx, fmt.Errorf("read version: %w", err)
	}
	if w.trace {
		w.d.sink.Emit("tx", zap.Uint64("position", position), zap.Uint32("version", tx.Version))
	}

	inCount, err := varint.Read(w.src, w.d.order)
	if err != nil {
		return tx, fmt.Errorf("read input count: %w", err)
	}
	// a zero flag is the output count of a transaction with no inputs and no outputs
	noOutputs := false
	if inCount == 0 && w.src.Consumed()-start == markerEnd {
		switch w.d.witness {
		case WitnessParse:
			flag, err := w.src.ReadUint8()
			if err != nil {
				return tx, fmt.Errorf("read witness flag: %w", err)
			}
			if w.trace {
				w.d.sink.Emit("tx", zap.Uint8("witness_flag", flag))
			}
			switch flag {
			case 0:
				noOutputs = true
			case witnessFlag:
				tx.WitnessFlag = flag
				if inCount, err = varint.Read(w.src, w.d.order); err != nil {
					return tx, fmt.Errorf("read input count: %w", err)
				}
			default:
				return tx, fmt.Errorf("%w: unknown flag 0x%02x", ErrBadWitnessFlag, flag)
			}
		case WitnessIgnore:
			w.suspectedWitness++
			if w.trace {
				w.d.sink.Emit("tx", zap.Bool("possible_witness_marker", true))
			}
		}
	}
	if w.trace {
		w.d.sink.Emit("tx", zap.Uint64("input_count", inCount))
	}

	tx.Inputs = make([]model.TxInput, 0, capHint(inCount, w.src.Remaining(), minInputSize))
	for i := uint64(0); i < inCount; i++ {
		in, err := w.input(i)
		if err != nil {
			return tx, fmt.Errorf("input %d: %w", i, err)
		}
		tx.Inputs = append(tx.Inputs, in)
	}

	var outCount uint64
	if !noOutputs {
		if outCount, err = varint.Read(w.src, w.d.order); err != nil {
			return tx, fmt.Errorf("read output count: %w", err)
		}
	}
	if w.trace {
		w.d.sink.Emit("tx", zap.Uint64("output_count", outCount))
	}
	tx.Outputs = make([]model.TxOutput, 0, capHint(outCount, w.src.Remaining(), minOutputSize))
	for i := uint64(0); i < outCount; i++ {
		out, err := w.output(i)
		if err != nil {
			return tx, fmt.Errorf("output %d: %w", i, err)
		}
		tx.Outputs = append(tx.Outputs, out)
	}

	witnessStart := w.src.Consumed()
	if tx.HasWitness() {
		for i := range tx.Inputs {
			if tx.Inputs[i].Witness, err = w.witness(i); err != nil {
				return tx, fmt.Errorf("witness of input %d: %w", i, err)
			}
		}
	}
	witnessEnd := w.src.Consumed()

	if tx.LockTime, err = w.src.ReadUint32(w.d.order); err != nil {
		return tx, fmt.Errorf("read lock time: %w", err)
	}
	end := w.src.Consumed()

	tx.Size = uint32(end - start)
	if tx.HasWitness() {
		// marker, flag and witness stacks are excluded from the txid preimage
		tx.BaseSize = tx.Size - 2 - uint32(witnessEnd-witnessStart)
		stripped := make([]byte, 0, tx.BaseSize)
		stripped = append(stripped, w.payload[start:start+4]...)
		stripped = append(stripped, w.payload[start+6:witnessStart]...)
		stripped = append(stripped, w.payload[witnessEnd:end]...)
		tx.TxID = model.HashFromChainhash(chainhash.DoubleHashH(stripped))
	} else {
		tx.BaseSize = tx.Size
		tx.TxID = model.HashFromChainhash(chainhash.DoubleHashH(w.payload[start:end]))
	}
	if w.trace {
		w.d.sink.Emit("tx", zap.Uint32("lock_time", tx.LockTime), zap.Stringer("txid", tx.TxID))
	}
	return tx, nil
}

func (w *blockWalker) input(index uint64) (model.TxInput, error) {
	var in model.TxInput
	var err error
	if in.PrevTxHash, err = w.hash(); err != nil {
		return in, fmt.Errorf("read previous tx hash: %w", err)
	}
	if in.PrevIndex, err = w.src.ReadUint32(w.d.order); err != nil {
		return in, fmt.Errorf("read previous output index: %w", err)
	}
	if in.Script, err = w.script(); err != nil {
		return in, fmt.Errorf("script: %w", err)
	}
	if in.Sequence, err = w.src.ReadUint32(w.d.order); err != nil {
		return in, fmt.Errorf("read sequence: %w", err)
	}
	if w.trace {
		w.d.sink.Emit("txin",
			zap.Uint64("index", index),
			zap.Stringer("prev_tx", in.PrevTxHash),
			zap.Uint32("prev_index", in.PrevIndex),
			zap.Int("script_len", len(in.Script)),
			zap.Stringer("script", in.Script),
			zap.Stringer("sequence", hex32(in.Sequence)),
		)
	}
	return in, nil
}

func (w *blockWalker) output(index uint64) (model.TxOutput, error) {
	var out model.TxOutput
	var err error
	if out.Value, err = w.src.ReadUint64(w.d.order); err != nil {
		return out, fmt.Errorf("read value: %w", err)
	}
	if out.Script, err = w.script(); err != nil {
		return out, fmt.Errorf("script: %w", err)
	}
	if w.trace {
		w.d.sink.Emit("txout",
			zap.Uint64("index", index),
			zap.Uint64("value", out.Value),
			zap.Int("script_len", len(out.Script)),
			zap.Stringer("script", out.Script),
		)
	}
	return out, nil
}

func (w *blockWalker) witness(input int) ([][]byte, error) {
	count, err := varint.Read(w.src, w.d.order)
	if err != nil {
		return nil, fmt.Errorf("read item count: %w", err)
	}
	stack := make([][]byte, 0, capHint(count, w.src.Remaining(), minWitnessItem))
	for i := uint64(0); i < count; i++ {
		n, err := varint.Read(w.src, w.d.order)
		if err != nil {
			return nil, fmt.Errorf("read item %d length: %w", i, err)
		}
		item, err := w.src.ReadExact(n)
		if err != nil {
			return nil, fmt.Errorf("read item %d: %w", i, err)
		}
		stack = append(stack, item)
	}
	if w.trace {
		w.d.sink.Emit("witness", zap.Int("input", input), zap.Int("items", len(stack)))
	}
	return stack, nil
}

func (w *blockWalker) script() (model.Script, error) {
	n, err := varint.Read(w.src, w.d.order)
	if err != nil {
		return nil, fmt.Errorf("read length: %w", err)
	}
	b, err := w.src.ReadExact(n)
	if err != nil {
		return nil, fmt.Errorf("read %d bytes: %w", n, err)
	}
	return b, nil
}

func (w *blockWalker) hash() (model.Hash, error) {
	b, err := w.src.ReadExact(model.HashSize)
	if err != nil {
		return model.Hash{}, err
	}
	return model.HashFromWire(b), nil
}

// prefixErr marks a read of the record prefix that ran out of data.
func prefixErr(what string, err error) error {
	if errors.Is(err, ErrTruncatedInput) {
		return fmt.Errorf("%s: %w: %w", what, ErrShortPrefix, err)
	}
	return fmt.Errorf("%s: %w", what, err)
}

// capHint bounds a declared element count by what the remaining bytes could hold.
func capHint(count, remaining, minSize uint64) int {
	if limit := remaining / minSize; count > limit {
		return int(limit)
	}
	return int(count)
}
