package uri

import (
	"log/slog"

	"github.com/ghettovoice/gouri/log"
	"github.com/ghettovoice/gouri/scheme"
)

// Options configure a [URI]. A nil *Options is valid and means defaults.
type Options struct {
	// Registry classifies schemes.
	// If nil, the [scheme.Default] is used.
	Registry scheme.Registry
	// Log is the logger used to report parse failures and other oddities at debug level.
	// If nil, the [log.Default] is used.
	Log *slog.Logger
}

func (o *Options) registry() scheme.Registry {
	if o == nil || o.Registry == nil {
		return scheme.Default()
	}
	return o.Registry
}

func (o *Options) log() *slog.Logger {
	if o == nil || o.Log == nil {
		return log.Default()
	}
	return o.Log
}
