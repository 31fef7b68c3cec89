package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// setupLogger настраивает формат логирования; диагностики идут в stderr,
// чтобы не смешиваться с отчётами в stdout.
func setupLogger() *log.Logger {
	logger := log.StandardLogger()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	logger.SetLevel(log.InfoLevel)
	return logger
}

func main() {
	logger := setupLogger()

	root := newRootCmd(os.LookupEnv, logger)
	if err := root.Execute(); err != nil {
		logger.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
