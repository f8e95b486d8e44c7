package usecase

import (
	"context"
	"io"
	"log/slog"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-actions/internal/entity"
)

type mockGameData struct {
	mock.Mock
}

func (that *mockGameData) FetchGameData(ctx context.Context, gameID string) (*entity.GameData, error) {
	args := that.Called(ctx, gameID)
	data, _ := args.Get(0).(*entity.GameData)
	return data, args.Error(1)
}

type mockEligibility struct {
	mock.Mock
}

func (that *mockEligibility) CheckIfUserCanPlay(ctx context.Context, gameID, account string) (*entity.Eligibility, error) {
	args := that.Called(ctx, gameID, account)
	eligibility, _ := args.Get(0).(*entity.Eligibility)
	return eligibility, args.Error(1)
}

type mockLedger struct {
	mock.Mock
}

func (that *mockLedger) LatestBlockhash(ctx context.Context) (solana.Hash, error) {
	args := that.Called(ctx)
	hash, _ := args.Get(0).(solana.Hash)
	return hash, args.Error(1)
}

type mockGameCreator struct {
	mock.Mock
}

func (that *mockGameCreator) CreateGame(ctx context.Context, account, mark string) (*entity.Game, error) {
	args := that.Called(ctx, account, mark)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
