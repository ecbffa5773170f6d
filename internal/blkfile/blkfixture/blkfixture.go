// Package blkfixture builds blk file records for tests.
package blkfixture

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Coinbase returns a coinbase transaction paying value to an OP_TRUE script.
func Coinbase(value int64, extra []byte) *wire.MsgTx {
	tx := wire.NewMsgTx(1)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{}, math.MaxUint32), extra, nil))
	tx.AddTxOut(wire.NewTxOut(value, []byte{0x51}))
	return tx
}

// Spend returns a transaction spending prev:index. A non-empty witness makes it a segwit transaction.
func Spend(prev chainhash.Hash, index uint32, value int64, witness ...[]byte) *wire.MsgTx {
	tx := wire.NewMsgTx(2)
	in := wire.NewTxIn(wire.NewOutPoint(&prev, index), nil, witness)
	if len(witness) == 0 {
		in.SignatureScript = []byte{0x00, 0x14}
	}
	tx.AddTxIn(in)
	tx.AddTxOut(wire.NewTxOut(value, []byte{0x00, 0x14, 0xab, 0xcd}))
	tx.LockTime = 0x11223344
	return tx
}

// Block builds a block on top of prev holding txs.
func Block(prev chainhash.Hash, timestamp int64, txs ...*wire.MsgTx) *wire.MsgBlock {
	var merkle chainhash.Hash
	if len(txs) > 0 {
		merkle = txs[0].TxHash()
	}
	header := wire.NewBlockHeader(1, &prev, &merkle, 0x1d00ffff, uint32(timestamp))
	header.Timestamp = time.Unix(timestamp, 0)
	block := wire.NewMsgBlock(header)
	for _, tx := range txs {
		if err := block.AddTransaction(tx); err != nil {
			panic(err)
		}
	}
	return block
}

// Chain builds n blocks linked by their previous-block hash, each with a single coinbase.
func Chain(n int) []*wire.MsgBlock {
	blocks := make([]*wire.MsgBlock, 0, n)
	var prev chainhash.Hash
	for i := 0; i < n; i++ {
		b := Block(prev, 1_600_000_000+int64(i)*600, Coinbase(50_0000_0000, []byte{byte(i), 0x01}))
		blocks = append(blocks, b)
		prev = b.BlockHash()
	}
	return blocks
}

// Body serializes block without the file prefix.
func Body(block *wire.MsgBlock) []byte {
	var buf bytes.Buffer
	if err := block.Serialize(&buf); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// Frame prefixes body with magic and a declared size, both little endian.
func Frame(magic, size uint32, body []byte) []byte {
	out := make([]byte, 0, 8+len(body))
	out = binary.LittleEndian.AppendUint32(out, magic)
	out = binary.LittleEndian.AppendUint32(out, size)
	return append(out, body...)
}

// Record serializes block the way it is stored in a blk file.
func Record(magic uint32, block *wire.MsgBlock) []byte {
	body := Body(block)
	return Frame(magic, uint32(len(body)), body)
}

// Records concatenates the records of blocks.
func Records(magic uint32, blocks ...*wire.MsgBlock) []byte {
	var out []byte
	for _, b := range blocks {
		out = append(out, Record(magic, b)...)
	}
	return out
}

// WriteFile writes data to name inside dir and returns the full path.
func WriteFile(dir, name string, data []byte) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
