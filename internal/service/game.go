package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-actions/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-actions/internal/entity"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
}

// GameStore - the game data source and the eligibility check of the action endpoints.
// It only reads games, apart from creating new ones.
type GameStore struct {
	logger   *slog.Logger
	gameRepo gameRepo
	image    string
}

func NewGameStore(logger *slog.Logger, gameRepo gameRepo, image string) *GameStore {
	return &GameStore{
		logger:   logger.With("component", "game_store"),
		gameRepo: gameRepo,
		image:    image,
	}
}

func (that *GameStore) FetchGameData(ctx context.Context, gameID string) (*entity.GameData, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch game data: %w", err)
	}

	return game.Data(), nil
}

func (that *GameStore) CheckIfUserCanPlay(ctx context.Context, gameID, account string) (*entity.Eligibility, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to check eligibility: %w", err)
	}

	return eligibility(game, account), nil
}

func eligibility(game *entity.Game, account string) *entity.Eligibility {
	if !game.State().IsOngoing() {
		return entity.Ineligible(apperror.ErrGameFinished)
	}

	lastMove, played := game.LastMove()
	if !played {
		// the opponent joins the game with the first move
		if account == game.Owner.Account {
			return entity.Ineligible(apperror.ErrOwnerFirstMove)
		}

		return entity.Eligible()
	}

	if !game.IsPlayer(account) {
		return entity.Ineligible(apperror.ErrNotGamePlayer)
	}

	if lastMove.Account == account {
		return entity.Ineligible(apperror.ErrNotYourTurn)
	}

	return entity.Eligible()
}

// CreateGame - stores a new game owned by the account.
func (that *GameStore) CreateGame(ctx context.Context, account, mark string) (*entity.Game, error) {
	log := that.logger.With("method", "CreateGame")

	if !entity.IsValidMark(mark) {
		return nil, apperror.ErrInvalidMark
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	game := entity.NewGame(id.String(), entity.Player{Account: account, Mark: mark}, that.image)
	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	log.Info("game created", "gameID", game.ID, "owner", account)

	return game, nil
}
