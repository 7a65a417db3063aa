package main // import "github.com/CognitoIQ/wsdlmd/cmd/wsdlmd"

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/CognitoIQ/wsdlmd/wsdlmd"
)

// infoLogger reports progress messages at info level.
type infoLogger struct {
	zerolog.Logger
}

func (l infoLogger) Printf(format string, v ...interface{}) {
	l.Info().Msgf(format, v...)
}

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	var cfg wsdlmd.Config
	cfg.Option(wsdlmd.DefaultOptions...)
	cfg.Option(wsdlmd.LogOutput(infoLogger{logger}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cfg.GenCLI(ctx, os.Args[1:]...); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		stop()
		logger.Fatal().Err(err).Msg("wsdlmd failed")
	}
}
