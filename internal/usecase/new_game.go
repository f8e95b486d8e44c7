package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/rocketscienceinc/tictactoe-actions/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-actions/internal/chain"
	"github.com/rocketscienceinc/tictactoe-actions/internal/entity"
)

type gameCreator interface {
	CreateGame(ctx context.Context, account, mark string) (*entity.Game, error)
}

// GameCreator - the action that opens a new game for the submitting account.
type GameCreator struct {
	logger *slog.Logger
	games  gameCreator
	ledger blockhashSource
	fee    chain.Fee
	image  string
}

func NewGameCreator(logger *slog.Logger, games gameCreator, ledger blockhashSource, fee chain.Fee, image string) *GameCreator {
	return &GameCreator{
		logger: logger.With("component", "new_game"),
		games:  games,
		ledger: ledger,
		fee:    fee,
		image:  image,
	}
}

func (that *GameCreator) Render() *entity.ActionGetResponse {
	return &entity.ActionGetResponse{
		Type:        entity.ActionTypeAction,
		Icon:        that.image,
		Title:       "New game",
		Label:       labelPlay,
		Description: "Pick your mark and challenge anyone with the game link.",
		Links: &entity.ActionLinks{
			Actions: []entity.LinkedAction{
				{
					Type:  entity.ActionTypeTransaction,
					Href:  newGamePath + "?mark={mark}",
					Label: "Create",
					Parameters: []entity.ActionParameter{
						{
							Type:     entity.ParameterTypeSelect,
							Name:     "mark",
							Label:    "Your mark",
							Required: true,
							Options: []entity.ParameterOption{
								{Label: entity.MarkX, Value: entity.MarkX},
								{Label: entity.MarkO, Value: entity.MarkO},
							},
						},
					},
				},
			},
		},
	}
}

// Create - validates the submission, then stores the game once the fee transaction is ready.
func (that *GameCreator) Create(ctx context.Context, req entity.ActionPostRequest, mark, origin string) (*entity.ActionPostResponse, error) {
	log := that.logger.With("method", "Create")

	payer, err := parsePayer(req.Account)
	if err != nil {
		return nil, err
	}

	if !entity.IsValidMark(mark) {
		return nil, apperror.ErrInvalidMark
	}

	encoded, err := feeTransaction(ctx, that.ledger, that.fee, payer)
	if err != nil {
		return nil, err
	}

	game, err := that.games.CreateGame(ctx, req.Account, mark)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	gameURL := strings.TrimSuffix(origin, "/") + "/" + url.PathEscape(game.ID)

	log.Info("new game opened", "gameID", game.ID)

	return &entity.ActionPostResponse{
		Type:        entity.ActionTypeTransaction,
		Transaction: encoded,
		Message:     "Game created! Share " + gameURL + " with your opponent.",
	}, nil
}
