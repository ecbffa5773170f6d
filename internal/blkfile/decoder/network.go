package decoder

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/model"
)

// MainNetMagic is the block sentinel of mainnet blk files, F9 BE B4 D9 on disk.
var MainNetMagic = uint32(chaincfg.MainNetParams.Net)

// MagicForNetwork returns the block sentinel used by blk files of the given network.
func MagicForNetwork(network model.Network) (uint32, error) {
	params, err := chainParamsForNetwork(network)
	if err != nil {
		return 0, err
	}
	return uint32(params.Net), nil
}

func chainParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "", "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}
