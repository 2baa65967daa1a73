package main

import (
	"fmt"
	"net/http"
	"os"

	"acertijo/backend"
	"acertijo/config"
	"acertijo/handler"
	"acertijo/logging"

	"github.com/sirupsen/logrus"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	config.ParseArgs()
	if config.CliArgs.Version {
		fmt.Println(Version)
		os.Exit(0)
	}

	if config.CliArgs.Debug {
		logging.InitLogger(logrus.DebugLevel)
	} else {
		logging.InitLogger(logrus.InfoLevel)
	}
	log := logging.GetLogger()

	if err := config.LoadDotEnv(config.CliArgs.EnvFile); err != nil {
		log.Fatalf("Failed to load env file: %v", err)
	}

	cfg, err := config.LoadConfig(config.CliArgs)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if _, ok := os.LookupEnv(cfg.APIKeyEnv); !ok {
		log.Warnf("%s is not set; requests will fail until it is", cfg.APIKeyEnv)
	}

	client := backend.NewBackendClient(cfg.APIRoot, cfg.Model, cfg.UpstreamTimeout)
	httpHandler := handler.NewHTTPHandler(client, cfg.APIKeyEnv)

	mux := http.NewServeMux()
	mux.Handle(cfg.EndpointPath, httpHandler)

	// Define the server
	server := &http.Server{
		Addr:    cfg.ListenAddress,
		Handler: mux,
	}

	log.WithFields(logrus.Fields{
		"endpoint": cfg.EndpointPath,
		"upstream": client.Endpoint(),
	}).Infof("Starting server on %s", cfg.ListenAddress)
	// Start listening and serving
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
