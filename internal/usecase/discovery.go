package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/rocketscienceinc/tictactoe-actions/internal/entity"
)

const (
	titleYourTurn  = "Your turn!"
	labelPlay      = "Play"
	tieDescription = "Twas a tie"
	newGamePath    = "/new"
)

type gameDataSource interface {
	FetchGameData(ctx context.Context, gameID string) (*entity.GameData, error)
}

// DiscoveryRenderer - turns the current state of a game into a discovery payload.
type DiscoveryRenderer struct {
	logger *slog.Logger
	games  gameDataSource
}

func NewDiscoveryRenderer(logger *slog.Logger, games gameDataSource) *DiscoveryRenderer {
	return &DiscoveryRenderer{
		logger: logger.With("component", "discovery"),
		games:  games,
	}
}

// Render - builds the payload for the game. Origin is the scheme and host the request came to,
// it is used to point finished games to a new one.
func (that *DiscoveryRenderer) Render(ctx context.Context, gameID, origin string) (*entity.ActionGetResponse, error) {
	log := that.logger.With("method", "Render", "gameID", gameID)

	data, err := that.games.FetchGameData(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if !data.Meta.State.IsOngoing() {
		log.Debug("game is over", "state", data.Meta.State.Tag)
		return completedPayload(data.Meta, origin), nil
	}

	char := entity.OppositeMark(data.Meta.Owner.Mark)

	return pendingPayload(gameID, char, data), nil
}

func completedPayload(meta entity.GameMeta, origin string) *entity.ActionGetResponse {
	result := tieDescription
	if meta.State.Tag == entity.StateWon {
		result = fmt.Sprintf("`%s` won", meta.State.Winner)
	}

	return &entity.ActionGetResponse{
		Type:        entity.ActionTypeCompleted,
		Icon:        meta.Image,
		Title:       titleYourTurn,
		Label:       labelPlay,
		Description: fmt.Sprintf("%s. Start a new game at %s", result, NewGameURL(origin)),
	}
}

func pendingPayload(gameID, char string, data *entity.GameData) *entity.ActionGetResponse {
	moveParam := entity.ActionParameter{
		Type:     entity.ParameterTypeSelect,
		Name:     "move",
		Label:    "Pick a square",
		Required: true,
		Options:  moveOptions(data.Options),
	}

	action := entity.LinkedAction{
		Type:  entity.ActionTypeTransaction,
		Label: labelPlay,
	}

	if len(data.History) == 0 {
		action.Href = submitHref(gameID, "username={username}&move={move}", char)
		action.Parameters = []entity.ActionParameter{
			{
				Type:     entity.ParameterTypeText,
				Name:     "username",
				Label:    "Your username",
				Required: true,
			},
			moveParam,
		}
	} else {
		action.Href = submitHref(gameID, "move={move}", char)
		action.Parameters = []entity.ActionParameter{moveParam}
	}

	return &entity.ActionGetResponse{
		Type:        entity.ActionTypeAction,
		Icon:        data.Meta.Image,
		Title:       titleYourTurn,
		Label:       labelPlay,
		Description: fmt.Sprintf("You play `%s`. Pick a free square.", char),
		Links: &entity.ActionLinks{
			Actions: []entity.LinkedAction{action},
		},
	}
}

func moveOptions(options []string) []entity.ParameterOption {
	result := make([]entity.ParameterOption, 0, len(options))
	for _, option := range options {
		result = append(result, entity.ParameterOption{Label: option, Value: option})
	}

	return result
}

// submitHref keeps the {placeholders} unescaped, the client substitutes them.
func submitHref(gameID, placeholders, char string) string {
	return "/" + url.PathEscape(gameID) + "?" + placeholders + "&char=" + url.QueryEscape(char)
}

func NewGameURL(origin string) string {
	return strings.TrimSuffix(origin, "/") + newGamePath
}
