package logger

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogging configures the global zerolog logger. When filePath is not
// empty the log is mirrored to that file in addition to the console.
func InitLogging(filePath string) {
	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}}
	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			writers = append(writers, f)
		}
	}
	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()
}

func InfoLog(ctx context.Context, msg string) {
	log.Info().Msg(msg)
}

func ErrorLog(ctx context.Context, msg string) {
	log.Error().Msg(msg)
}

func DebugLog(ctx context.Context, msg string) {
	log.Debug().Msg(msg)
}
