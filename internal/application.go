package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-actions/internal/chain"
	"github.com/rocketscienceinc/tictactoe-actions/internal/config"
	"github.com/rocketscienceinc/tictactoe-actions/internal/repository"
	"github.com/rocketscienceinc/tictactoe-actions/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-actions/internal/service"
	"github.com/rocketscienceinc/tictactoe-actions/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-actions/transport/rest"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	// the fee settings are checked before anything is connected
	fee, err := chain.NewFee(conf.Solana.RecipientAccount, conf.Solana.ProcessingFee)
	if err != nil {
		return fmt.Errorf("invalid fee configuration: %w", err)
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr(), conf.Redis.Password, conf.Redis.DB)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	solanaClient := chain.New(conf.Solana.RPCEndpoint)
	defer func() {
		if err = solanaClient.Close(); err != nil {
			log.Error("could not close rpc client", "error", err)
		}
	}()

	gameRepo := repository.NewGameRepository(redisStorage)
	gameStore := service.NewGameStore(logger, gameRepo, conf.Game.ImageURL)

	discovery := usecase.NewDiscoveryRenderer(logger, gameStore)
	intents := usecase.NewMoveIntentBuilder(logger, gameStore, solanaClient, fee)
	newGame := usecase.NewGameCreator(logger, gameStore, solanaClient, fee, conf.Game.ImageURL)

	router := rest.NewRouter(logger, conf.Solana.BlockchainID, rest.NewActionHandler(logger, discovery, intents, newGame))
	server := rest.New(logger, conf.HTTPPort, router)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "recipient", fee.Recipient.String(), "feeLamports", fee.Lamports)

	if err = server.Start(ctx); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
