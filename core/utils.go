package core

import (
	"context"
	"fmt"
	"time"

	"github.com/defiweb/go-eth/types"
	logger "github.com/sirupsen/logrus"
)

const MethodGetTransactionReceipt = "eth_getTransactionReceipt"

// WaitForReceipt polls the node until the transaction is mined or timeout passes.
func WaitForReceipt(
	ctx context.Context,
	transport Transport,
	txHash string,
	interval time.Duration,
	timeout time.Duration,
) (*types.TransactionReceipt, error) {
	if transport == nil {
		return nil, fmt.Errorf("rpc transport not set")
	}
	if interval <= 0 {
		return nil, fmt.Errorf("poll interval must be positive, got %v", interval)
	}
	hash, err := types.HashFromHex(txHash, types.PadNone)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction hash %q: %v", txHash, err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("failed to wait for transaction %s confirmation: %w", hash, ctx.Err())
		case <-ticker.C:
			logger.WithField("txHash", hash).Tracef("checking transaction confirmation")

			var receipt *types.TransactionReceipt
			err := transport.Call(ctx, &receipt, MethodGetTransactionReceipt, hash)
			if err != nil {
				logger.WithField("txHash", hash).Errorf("failed to get transaction receipt: %v", err)
				continue
			}
			if receipt == nil || receipt.TransactionHash.IsZero() {
				logger.WithField("txHash", hash).Tracef("transaction is not yet confirmed")
				continue
			}
			return receipt, nil
		}
	}
}
