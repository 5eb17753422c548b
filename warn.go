package classkit

import (
	"os"

	"github.com/rs/zerolog"
)

// WarnEvent signals a non-fatal condition, currently only post-creation
// protection requests (the assignment succeeds, the request is dropped).
type WarnEvent struct {
	Class   string
	Attr    string
	Message string
}

// WarnHandler receives warning events.
type WarnHandler func(WarnEvent)

var warnLogger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "classkit").Logger()

var currentWarnHandler WarnHandler = func(e WarnEvent) {
	warnLogger.Warn().Str("class", e.Class).Str("attr", e.Attr).Msg(e.Message)
}

// SetWarnHandler replaces the warning sink. A nil handler restores the
// default zerolog emitter.
func SetWarnHandler(h WarnHandler) {
	if h == nil {
		h = func(e WarnEvent) {
			warnLogger.Warn().Str("class", e.Class).Str("attr", e.Attr).Msg(e.Message)
		}
	}
	currentWarnHandler = h
}

func warnf(class, attr, msg string) {
	currentWarnHandler(WarnEvent{Class: class, Attr: attr, Message: msg})
}
