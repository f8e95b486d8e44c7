package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-actions/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-actions/internal/entity"
)

const testBlockchainID = "solana:EtWTRABZaYq6iMfeYKouRu166VU2xqa1"

type mockDiscovery struct {
	mock.Mock
}

func (that *mockDiscovery) Render(ctx context.Context, gameID, origin string) (*entity.ActionGetResponse, error) {
	args := that.Called(ctx, gameID, origin)
	payload, _ := args.Get(0).(*entity.ActionGetResponse)
	return payload, args.Error(1)
}

type mockIntents struct {
	mock.Mock
}

func (that *mockIntents) Build(ctx context.Context, gameID string, req entity.ActionPostRequest, query entity.MoveQuery) (*entity.ActionPostResponse, error) {
	args := that.Called(ctx, gameID, req, query)
	resp, _ := args.Get(0).(*entity.ActionPostResponse)
	return resp, args.Error(1)
}

type mockNewGame struct {
	mock.Mock
}

func (that *mockNewGame) Render() *entity.ActionGetResponse {
	args := that.Called()
	payload, _ := args.Get(0).(*entity.ActionGetResponse)
	return payload
}

func (that *mockNewGame) Create(ctx context.Context, req entity.ActionPostRequest, mark, origin string) (*entity.ActionPostResponse, error) {
	args := that.Called(ctx, req, mark, origin)
	resp, _ := args.Get(0).(*entity.ActionPostResponse)
	return resp, args.Error(1)
}

type routerFixture struct {
	router    http.Handler
	discovery *mockDiscovery
	intents   *mockIntents
	newGame   *mockNewGame
}

func newRouterFixture(t *testing.T) *routerFixture {
	t.Helper()

	f := &routerFixture{
		discovery: &mockDiscovery{},
		intents:   &mockIntents{},
		newGame:   &mockNewGame{},
	}
	t.Cleanup(func() {
		f.discovery.AssertExpectations(t)
		f.intents.AssertExpectations(t)
		f.newGame.AssertExpectations(t)
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.router = NewRouter(logger, testBlockchainID, NewActionHandler(logger, f.discovery, f.intents, f.newGame))

	return f
}

func (that *routerFixture) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Host = "play.example.com"
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	that.router.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var actionErr entity.ActionError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actionErr))

	return actionErr.Message
}

func TestActionHandler_Discover(t *testing.T) {
	t.Run("Renders the payload with action headers", func(t *testing.T) {
		// Given: a renderer returning a pending move
		f := newRouterFixture(t)
		payload := &entity.ActionGetResponse{Type: entity.ActionTypeAction, Title: "Your turn!", Label: "Play"}
		f.discovery.On("Render", mock.Anything, "g1", "http://play.example.com").Return(payload, nil).Once()

		// When: a client fetches the game
		rec := f.do(http.MethodGet, "/g1", "", map[string]string{"Origin": "https://wallet.example"})

		// Then: the payload should be returned with protocol and CORS headers
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, actionVersion, rec.Header().Get(headerActionVersion))
		assert.Equal(t, testBlockchainID, rec.Header().Get(headerBlockchainIDs))

		var got entity.ActionGetResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, *payload, got)
	})

	t.Run("Uses forwarded scheme for the origin", func(t *testing.T) {
		f := newRouterFixture(t)
		f.discovery.On("Render", mock.Anything, "g1", "https://play.example.com").
			Return(&entity.ActionGetResponse{Type: entity.ActionTypeCompleted}, nil).
			Once()

		rec := f.do(http.MethodGet, "/g1", "", map[string]string{"X-Forwarded-Proto": "https"})

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Unknown game is not found", func(t *testing.T) {
		f := newRouterFixture(t)
		f.discovery.On("Render", mock.Anything, "nope", mock.Anything).
			Return(nil, errors.Join(errors.New("failed to get game"), apperror.ErrGameNotFound)).
			Once()

		rec := f.do(http.MethodGet, "/nope", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "game not found", decodeError(t, rec))
	})

	t.Run("Other failures are client errors", func(t *testing.T) {
		f := newRouterFixture(t)
		f.discovery.On("Render", mock.Anything, "g1", mock.Anything).Return(nil, errors.New("redis down")).Once()

		rec := f.do(http.MethodGet, "/g1", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "redis down", decodeError(t, rec))
	})
}

func TestActionHandler_AllowedMethods(t *testing.T) {
	t.Run("Pre-flight does not render the payload", func(t *testing.T) {
		// Given: a router whose renderer must not be called
		f := newRouterFixture(t)

		// When: a browser sends a pre-flight
		rec := f.do(http.MethodOptions, "/g1", "", map[string]string{
			"Origin":                        "https://wallet.example",
			"Access-Control-Request-Method": http.MethodPost,
		})

		// Then: only CORS metadata should be returned
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("Plain OPTIONS lists the methods", func(t *testing.T) {
		f := newRouterFixture(t)

		rec := f.do(http.MethodOptions, "/g1", "", nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "GET, POST, OPTIONS", rec.Header().Get("Allow"))
	})
}

func TestActionHandler_SubmitMove(t *testing.T) {
	t.Run("Passes account and query to the builder", func(t *testing.T) {
		// Given: a builder accepting the move
		f := newRouterFixture(t)
		resp := &entity.ActionPostResponse{
			Type:        entity.ActionTypeTransaction,
			Transaction: "AQID",
			Links:       &entity.PostLinks{Next: entity.NextActionLink{Type: entity.ActionTypePost, Href: "/g1/confirm?move=5"}},
		}
		f.intents.On("Build", mock.Anything, "g1",
			entity.ActionPostRequest{Account: "payer"},
			entity.MoveQuery{Move: "5", Char: "o", Username: "neo"},
		).Return(resp, nil).Once()

		// When: the client posts the move
		rec := f.do(http.MethodPost, "/g1?move=5&char=o&username=neo", `{"account":"payer"}`,
			map[string]string{"Content-Type": "application/json"})

		// Then: the transaction response should be returned
		require.Equal(t, http.StatusOK, rec.Code)

		var got entity.ActionPostResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, *resp, got)
	})

	t.Run("Rejections are rendered as bad request", func(t *testing.T) {
		f := newRouterFixture(t)
		f.intents.On("Build", mock.Anything, "g1", entity.ActionPostRequest{}, entity.MoveQuery{}).
			Return(nil, apperror.ErrAccountRequired).
			Once()

		rec := f.do(http.MethodPost, "/g1", `not json`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "`account` field is required", decodeError(t, rec))
	})

	t.Run("Eligibility reason is the message", func(t *testing.T) {
		f := newRouterFixture(t)
		f.intents.On("Build", mock.Anything, "g1", mock.Anything, mock.Anything).
			Return(nil, apperror.NewIneligible("It's not your turn")).
			Once()

		rec := f.do(http.MethodPost, "/g1?move=1&char=x", `{"account":"payer"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "It's not your turn", decodeError(t, rec))
	})
}

func TestActionHandler_NewGame(t *testing.T) {
	t.Run("Discovery of the new game action", func(t *testing.T) {
		f := newRouterFixture(t)
		f.newGame.On("Render").Return(&entity.ActionGetResponse{Type: entity.ActionTypeAction, Title: "New game"}).Once()

		rec := f.do(http.MethodGet, "/new", "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "New game")
	})

	t.Run("Creating a game", func(t *testing.T) {
		f := newRouterFixture(t)
		f.newGame.On("Create", mock.Anything, entity.ActionPostRequest{Account: "owner"}, "x", "http://play.example.com").
			Return(&entity.ActionPostResponse{Type: entity.ActionTypeTransaction, Transaction: "AQID"}, nil).
			Once()

		rec := f.do(http.MethodPost, "/new?mark=x", `{"account":"owner"}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Invalid mark", func(t *testing.T) {
		f := newRouterFixture(t)
		f.newGame.On("Create", mock.Anything, mock.Anything, "z", mock.Anything).
			Return(nil, apperror.ErrInvalidMark).
			Once()

		rec := f.do(http.MethodPost, "/new?mark=z", `{"account":"owner"}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apperror.ErrInvalidMark.Error(), decodeError(t, rec))
	})
}

func TestActionsJSONAndPing(t *testing.T) {
	f := newRouterFixture(t)

	rec := f.do(http.MethodGet, "/actions.json", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"rules":[{"pathPattern":"/**","apiPath":"/**"}]}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}
