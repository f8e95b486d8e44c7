package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis  `yaml:"redis"`
	Solana   Solana `yaml:"solana"`
	Game     Game   `yaml:"game"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Solana struct {
	RPCEndpoint string `yaml:"rpc-endpoint" env:"SOLANA_RPC_ENDPOINT" env-default:"https://api.devnet.solana.com"`
	// RecipientAccount receives the processing fee of every move.
	RecipientAccount string  `yaml:"recipient-account" env:"PROGRAM_ACCOUNT" env-required:"true"`
	ProcessingFee    float64 `yaml:"processing-fee" env:"PROCESSING_FEE" env-default:"0.001"`
	BlockchainID     string  `yaml:"blockchain-id" env:"BLOCKCHAIN_ID" env-default:"solana:EtWTRABZaYq6iMfeYKouRu166VU2xqa1"`
}

type Game struct {
	ImageURL string `yaml:"image-url" env:"GAME_IMAGE_URL" env-default:"https://ucarecdn.com/7aa46c85-08a4-4bc7-9376-88ec48bb1f43/-/preview/880x864/"`
}

// MustLoad - load all configurations from the config file, falling back to the environment
// when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read env: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
