package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/foodhubco/foodbot/pkg/logger"
	"github.com/foodhubco/foodbot/server"
)

func main() {
	// Parse command line flags
	listenAddr := flag.String("listen", "", `Address to listen on (default ":3000")`)
	configPath := flag.String("config", "", "Path to a TOML config file")
	model := flag.String("model", "", `OpenAI model identifier (default "gpt-4o-mini")`)
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	// Set up logger
	logger := logger.NewLogger(*debug)
	defer logger.Sync()

	// A .env file is optional; the credential always comes from the environment
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("could not load .env file", zap.Error(err))
	}

	config := server.DefaultConfig()
	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			logger.Fatal("failed to load config file", zap.Error(err))
		}
	}

	// Flags override file values
	if *listenAddr != "" {
		config.ListenAddr = *listenAddr
	}
	if *model != "" {
		config.Model = *model
	}
	config.APIKey = os.Getenv("OPENAI_API_KEY")

	logger.Info("foodbot chat server starting",
		zap.String("listen", config.ListenAddr),
		zap.String("model", config.Model),
		zap.Bool("debug", *debug),
	)

	s := server.New(config, logger)
	if err := s.Run(); err != nil {
		logger.Fatal("chat server failed", zap.Error(err))
	}
}
