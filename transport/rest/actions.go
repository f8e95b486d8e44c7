package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-actions/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-actions/internal/entity"
	"github.com/rocketscienceinc/tictactoe-actions/internal/metrics"
)

const (
	actionMove    = "move"
	actionNewGame = "new_game"
)

type discoveryRenderer interface {
	Render(ctx context.Context, gameID, origin string) (*entity.ActionGetResponse, error)
}

type moveIntentBuilder interface {
	Build(ctx context.Context, gameID string, req entity.ActionPostRequest, query entity.MoveQuery) (*entity.ActionPostResponse, error)
}

type newGameAction interface {
	Render() *entity.ActionGetResponse
	Create(ctx context.Context, req entity.ActionPostRequest, mark, origin string) (*entity.ActionPostResponse, error)
}

type ActionHandler struct {
	logger *slog.Logger

	discovery discoveryRenderer
	intents   moveIntentBuilder
	newGame   newGameAction
}

func NewActionHandler(logger *slog.Logger, discovery discoveryRenderer, intents moveIntentBuilder, newGame newGameAction) *ActionHandler {
	return &ActionHandler{
		logger:    logger.With("component", "actions"),
		discovery: discovery,
		intents:   intents,
		newGame:   newGame,
	}
}

func (that *ActionHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/actions.json", that.ActionsJSON)

	router.GET("/new", that.NewGame)
	router.OPTIONS("/new", that.AllowedMethods)
	router.POST("/new", that.CreateGame)

	router.GET("/:gameId", that.Discover)
	router.OPTIONS("/:gameId", that.AllowedMethods)
	router.POST("/:gameId", that.SubmitMove)
}

// ActionsJSON - maps every path of this host to itself for action clients.
func (that *ActionHandler) ActionsJSON(c *gin.Context) {
	c.JSON(http.StatusOK, entity.ActionsJSON{
		Rules: []entity.ActionRule{
			{PathPattern: "/**", APIPath: "/**"},
		},
	})
}

// AllowedMethods - pre-flight answer without the discovery payload.
func (that *ActionHandler) AllowedMethods(c *gin.Context) {
	c.Header("Allow", "GET, POST, OPTIONS")
	c.Status(http.StatusNoContent)
}

func (that *ActionHandler) Discover(c *gin.Context) {
	log := that.logger.With("method", "Discover")

	payload, err := that.discovery.Render(c.Request.Context(), c.Param("gameId"), requestOrigin(c.Request))
	if errors.Is(err, apperror.ErrGameNotFound) {
		c.JSON(http.StatusNotFound, entity.ActionError{Message: apperror.ErrGameNotFound.Error()})
		return
	}

	if err != nil {
		log.Error("failed to render discovery", "error", err)
		c.JSON(http.StatusBadRequest, entity.ActionError{Message: err.Error()})
		return
	}

	metrics.DiscoveryRendered.WithLabelValues(payload.Type).Inc()

	c.JSON(http.StatusOK, payload)
}

func (that *ActionHandler) SubmitMove(c *gin.Context) {
	log := that.logger.With("method", "SubmitMove")

	query := entity.MoveQuery{
		Move:     c.Query("move"),
		Char:     c.Query("char"),
		Username: c.Query("username"),
	}

	resp, err := that.intents.Build(c.Request.Context(), c.Param("gameId"), bindPostRequest(c), query)
	if err != nil {
		log.Info("move rejected", "error", err)
		metrics.Submissions.WithLabelValues(actionMove, metrics.ResultRejected).Inc()
		c.JSON(http.StatusBadRequest, entity.ActionError{Message: err.Error()})
		return
	}

	metrics.Submissions.WithLabelValues(actionMove, metrics.ResultAccepted).Inc()

	c.JSON(http.StatusOK, resp)
}

func (that *ActionHandler) NewGame(c *gin.Context) {
	payload := that.newGame.Render()

	metrics.DiscoveryRendered.WithLabelValues(payload.Type).Inc()

	c.JSON(http.StatusOK, payload)
}

func (that *ActionHandler) CreateGame(c *gin.Context) {
	log := that.logger.With("method", "CreateGame")

	resp, err := that.newGame.Create(c.Request.Context(), bindPostRequest(c), c.Query("mark"), requestOrigin(c.Request))
	if err != nil {
		log.Info("new game rejected", "error", err)
		metrics.Submissions.WithLabelValues(actionNewGame, metrics.ResultRejected).Inc()
		c.JSON(http.StatusBadRequest, entity.ActionError{Message: err.Error()})
		return
	}

	metrics.Submissions.WithLabelValues(actionNewGame, metrics.ResultAccepted).Inc()

	c.JSON(http.StatusOK, resp)
}

// bindPostRequest - a body that is not JSON is treated as a submission without account.
func bindPostRequest(c *gin.Context) entity.ActionPostRequest {
	var req entity.ActionPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return entity.ActionPostRequest{}
	}

	return req
}

// requestOrigin - scheme and host the client used to reach the service.
func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	host := r.Host
	if forwarded := r.Header.Get("X-Forwarded-Host"); forwarded != "" {
		host = strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	return scheme + "://" + host
}
