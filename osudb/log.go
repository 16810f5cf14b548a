package osudb

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func debugEvent() *zerolog.Event {
	return log.Debug().Str("module", "osudb")
}
