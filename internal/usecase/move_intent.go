package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gagliardetto/solana-go"

	"github.com/rocketscienceinc/tictactoe-actions/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-actions/internal/chain"
	"github.com/rocketscienceinc/tictactoe-actions/internal/entity"
)

type eligibilityChecker interface {
	CheckIfUserCanPlay(ctx context.Context, gameID, account string) (*entity.Eligibility, error)
}

type blockhashSource interface {
	LatestBlockhash(ctx context.Context) (solana.Hash, error)
}

// MoveIntentBuilder - validates a move submission and answers with the fee transaction
// and the link to the confirmation step.
type MoveIntentBuilder struct {
	logger  *slog.Logger
	players eligibilityChecker
	ledger  blockhashSource
	fee     chain.Fee
}

func NewMoveIntentBuilder(logger *slog.Logger, players eligibilityChecker, ledger blockhashSource, fee chain.Fee) *MoveIntentBuilder {
	return &MoveIntentBuilder{
		logger:  logger.With("component", "move_intent"),
		players: players,
		ledger:  ledger,
		fee:     fee,
	}
}

func (that *MoveIntentBuilder) Build(ctx context.Context, gameID string, req entity.ActionPostRequest, query entity.MoveQuery) (*entity.ActionPostResponse, error) {
	log := that.logger.With("method", "Build", "gameID", gameID)

	payer, err := parsePayer(req.Account)
	if err != nil {
		return nil, err
	}

	eligibility, err := that.players.CheckIfUserCanPlay(ctx, gameID, req.Account)
	if err != nil {
		return nil, fmt.Errorf("failed to check player: %w", err)
	}

	if !eligibility.CanPlay {
		log.Debug("player rejected", "account", req.Account, "reason", eligibility.Reason)
		return nil, apperror.NewIneligible(eligibility.Reason)
	}

	if !query.HasMove() {
		return nil, apperror.ErrMoveFieldsMissing
	}

	encoded, err := feeTransaction(ctx, that.ledger, that.fee, payer)
	if err != nil {
		return nil, err
	}

	intent := entity.NewMoveIntent(req.Account, query)

	log.Info("move intent built", "account", req.Account, "move", intent.Move, "char", intent.Char)

	return &entity.ActionPostResponse{
		Type:        entity.ActionTypeTransaction,
		Transaction: encoded,
		Links: &entity.PostLinks{
			Next: entity.NextActionLink{
				Type: entity.ActionTypePost,
				Href: intent.ConfirmHref(gameID),
			},
		},
	}, nil
}

func parsePayer(account string) (solana.PublicKey, error) {
	if strings.TrimSpace(account) == "" {
		return solana.PublicKey{}, apperror.ErrAccountRequired
	}

	payer, err := chain.ParseAccount(account)
	if err != nil {
		return solana.PublicKey{}, apperror.ErrInvalidAccount
	}

	return payer, nil
}

func feeTransaction(ctx context.Context, ledger blockhashSource, fee chain.Fee, payer solana.PublicKey) (string, error) {
	blockhash, err := ledger.LatestBlockhash(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get blockhash: %w", err)
	}

	tx, err := chain.BuildFeeTransaction(fee, payer, blockhash)
	if err != nil {
		return "", err
	}

	encoded, err := chain.EncodeTransaction(tx)
	if err != nil {
		return "", err
	}

	return encoded, nil
}
