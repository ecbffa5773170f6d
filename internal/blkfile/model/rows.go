package model

import "time"

// Network names the chain a blocks directory belongs to.
type Network string

var (
	Mainnet  Network = "mainnet"
	Testnet3 Network = "testnet3"
	Regtest  Network = "regtest"
	Signet   Network = "signet"
)

// BlockRow is a block persisted to ClickHouse.
type BlockRow struct {
	Network    Network
	File       string
	Offset     uint64
	Hash       string
	PrevHash   string
	MerkleRoot string
	Version    uint32
	Timestamp  time.Time
	Bits       uint32
	Nonce      uint32
	Size       uint32
	TXCount    uint32
}

// TransactionRow is a transaction persisted to ClickHouse.
type TransactionRow struct {
	Network     Network
	BlockHash   string
	TxID        string
	Position    uint32
	Timestamp   time.Time
	Size        uint32
	VSize       uint32
	Version     uint32
	LockTime    uint32
	InputCount  uint32
	OutputCount uint32
	HasWitness  bool
}

// InputRow describes a reference to a previous transaction output.
type InputRow struct {
	Network    Network
	BlockHash  string
	TxID       string
	Index      uint32
	PrevTxID   string
	PrevVout   uint32
	Sequence   uint32
	IsCoinbase bool
	ScriptHex  string
	Witness    []string
}

// OutputRow represents an output produced by a transaction.
type OutputRow struct {
	Network   Network
	BlockHash string
	TxID      string
	Index     uint32
	Value     uint64
	ScriptHex string
}

// InsertBlock groups a block with its transactions, inputs and outputs for batch insertion.
type InsertBlock struct {
	Block   BlockRow
	Txs     []TransactionRow
	Inputs  []InputRow
	Outputs []OutputRow
}
