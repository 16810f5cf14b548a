package application

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MingxuanGame/OsuDB/base_service"
)

var logger = base_service.GetLogger("application")

// CreateSignalCancelContext cancels on the first SIGINT/SIGTERM; a second one exits.
func CreateSignalCancelContext() context.Context {
	signalChan := make(chan os.Signal, 2)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-signalChan
		logger.Info().Msg("Received interrupt signal. Canceling tasks...")
		cancel()
		<-signalChan
		logger.Warn().Msg("Received second interrupt signal. Exiting...")
		base_service.CloseLog()
		os.Exit(1)
	}()
	return ctx
}
