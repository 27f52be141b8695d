// Package logging wires the engines' narrow Progress seam to structured
// zerolog output, and configures the global logger used by the CLI driver.
package logging

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Configure sets the global zerolog logger's writer and verbosity. Pass
// verbose=true for debug-level output, otherwise info-level.
func Configure(w io.Writer, verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
}

// ZerologProgress reports block/batch completion through the global
// zerolog logger, at debug level so routine progress does not flood normal
// runs.
type ZerologProgress struct{}

// Block implements distengine.Progress.
func (ZerologProgress) Block(stage string, done, total int) {
	log.Debug().Str("stage", stage).Int("done", done).Int("total", total).Msg("block complete")
}
