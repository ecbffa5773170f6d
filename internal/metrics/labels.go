package metrics

import "github.com/goodnatureofminers/blockinsight7000-blkdecoder/internal/blkfile/model"

const unknownLabel = "unknown"

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func networkLabel(network model.Network) string {
	if network == "" {
		return unknownLabel
	}
	return string(network)
}
