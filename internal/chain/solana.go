package chain

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/rocketscienceinc/tictactoe-actions/internal/apperror"
)

// Client - a thin gateway to a Solana RPC node.
type Client struct {
	rpc        *rpc.Client
	commitment rpc.CommitmentType
}

func New(endpoint string) *Client {
	return &Client{
		rpc:        rpc.New(endpoint),
		commitment: rpc.CommitmentFinalized,
	}
}

// LatestBlockhash - fetches a recent blockhash for a transaction to reference.
func (that *Client) LatestBlockhash(ctx context.Context) (solana.Hash, error) {
	out, err := that.rpc.GetLatestBlockhash(ctx, that.commitment)
	if err != nil {
		return solana.Hash{}, fmt.Errorf("%w: %w", apperror.ErrNoBlockhash, err)
	}

	if out == nil || out.Value == nil {
		return solana.Hash{}, apperror.ErrNoBlockhash
	}

	return out.Value.Blockhash, nil
}

func (that *Client) Close() error {
	if err := that.rpc.Close(); err != nil {
		return fmt.Errorf("failed to close rpc client: %w", err)
	}

	return nil
}
