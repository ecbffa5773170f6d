// Package convert maps decoded blocks onto storage rows.
package convert

import (
	"encoding/hex"
	"fmt"
	"path/filepath"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/model"
	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/pkg/safe"
)

// Converter builds rows for one network.
type Converter struct {
	network model.Network
}

// NewConverter constructs a Converter tagging rows with network.
func NewConverter(network model.Network) *Converter {
	return &Converter{network: network}
}

// Convert maps block, read from file, into the rows of every table. Only the base name of file is kept.
func (c *Converter) Convert(file string, block *model.Block) (model.InsertBlock, error) {
	txCount, err := safe.Uint32(len(block.Transactions))
	if err != nil {
		return model.InsertBlock{}, fmt.Errorf("block %s tx count overflow: %w", block.Hash, err)
	}

	blockHash := block.Hash.String()
	timestamp := block.Header.Time()
	out := model.InsertBlock{
		Block: model.BlockRow{
			Network:    c.network,
			File:       filepath.Base(file),
			Offset:     block.Offset,
			Hash:       blockHash,
			PrevHash:   block.Header.PrevBlock.String(),
			MerkleRoot: block.Header.MerkleRoot.String(),
			Version:    block.Header.Version,
			Timestamp:  timestamp,
			Bits:       block.Header.Bits,
			Nonce:      block.Header.Nonce,
			Size:       block.Header.Size,
			TXCount:    txCount,
		},
		Txs: make([]model.TransactionRow, 0, len(block.Transactions)),
	}

	for i, tx := range block.Transactions {
		position, err := safe.Uint32(i)
		if err != nil {
			return model.InsertBlock{}, fmt.Errorf("block %s tx position overflow: %w", blockHash, err)
		}
		inputCount, err := safe.Uint32(len(tx.Inputs))
		if err != nil {
			return model.InsertBlock{}, fmt.Errorf("tx %s input count overflow: %w", tx.TxID, err)
		}
		outputCount, err := safe.Uint32(len(tx.Outputs))
		if err != nil {
			return model.InsertBlock{}, fmt.Errorf("tx %s output count overflow: %w", tx.TxID, err)
		}

		txID := tx.TxID.String()
		out.Txs = append(out.Txs, model.TransactionRow{
			Network:     c.network,
			BlockHash:   blockHash,
			TxID:        txID,
			Position:    position,
			Timestamp:   timestamp,
			Size:        tx.Size,
			VSize:       tx.VSize(),
			Version:     tx.Version,
			LockTime:    tx.LockTime,
			InputCount:  inputCount,
			OutputCount: outputCount,
			HasWitness:  tx.HasWitness(),
		})

		for j, in := range tx.Inputs {
			index, err := safe.Uint32(j)
			if err != nil {
				return model.InsertBlock{}, fmt.Errorf("tx %s input index overflow: %w", txID, err)
			}
			out.Inputs = append(out.Inputs, model.InputRow{
				Network:    c.network,
				BlockHash:  blockHash,
				TxID:       txID,
				Index:      index,
				PrevTxID:   in.PrevTxHash.String(),
				PrevVout:   in.PrevIndex,
				Sequence:   in.Sequence,
				IsCoinbase: in.IsCoinbase(),
				ScriptHex:  in.Script.String(),
				Witness:    witnessHex(in.Witness),
			})
		}

		for j, o := range tx.Outputs {
			index, err := safe.Uint32(j)
			if err != nil {
				return model.InsertBlock{}, fmt.Errorf("tx %s output index overflow: %w", txID, err)
			}
			out.Outputs = append(out.Outputs, model.OutputRow{
				Network:   c.network,
				BlockHash: blockHash,
				TxID:      txID,
				Index:     index,
				Value:     o.Value,
				ScriptHex: o.Script.String(),
			})
		}
	}
	return out, nil
}

func witnessHex(stack [][]byte) []string {
	items := make([]string, 0, len(stack))
	for _, item := range stack {
		items = append(items, hex.EncodeToString(item))
	}
	return items
}
