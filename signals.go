package hypermedia

import (
	"context"
	"strings"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for registration events.
var (
	SignalRegistrationStart    = capitan.NewSignal("hypermedia.registration.start", "Registration pass beginning")
	SignalRegistrationSkipped  = capitan.NewSignal("hypermedia.registration.skipped", "Registration skipped, hypermedia support already present")
	SignalPipelineBuilt        = capitan.NewSignal("hypermedia.pipeline.built", "Format pipeline built and installed")
	SignalRegistrationComplete = capitan.NewSignal("hypermedia.registration.complete", "Registration pass finished")
)

// Keys for typed event data.
var (
	KeyFormat     = capitan.NewStringKey("format")
	KeyMediaTypes = capitan.NewStringKey("media_types")
	KeyEnabled    = capitan.NewIntKey("enabled")
	KeyChainLen   = capitan.NewIntKey("chain_len")
	KeyBuilt      = capitan.NewIntKey("built")
	KeyDuration   = capitan.NewDurationKey("duration")
	KeyError      = capitan.NewErrorKey("error")
)

// emitRegistrationStart emits an event when a registration pass begins.
func emitRegistrationStart(ctx context.Context, enabled, chainLen int) {
	capitan.Emit(ctx, SignalRegistrationStart,
		KeyEnabled.Field(enabled),
		KeyChainLen.Field(chainLen),
	)
}

// emitRegistrationSkipped emits an event when the duplicate guard short-circuits.
func emitRegistrationSkipped(ctx context.Context, chainLen int) {
	capitan.Emit(ctx, SignalRegistrationSkipped,
		KeyChainLen.Field(chainLen),
	)
}

// emitPipelineBuilt emits an event when a format pipeline is installed.
func emitPipelineBuilt(ctx context.Context, format Format, mediaTypes []string) {
	capitan.Emit(ctx, SignalPipelineBuilt,
		KeyFormat.Field(string(format)),
		KeyMediaTypes.Field(strings.Join(mediaTypes, ",")),
	)
}

// emitRegistrationComplete emits an event when a registration pass finishes.
func emitRegistrationComplete(ctx context.Context, built, chainLen int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyBuilt.Field(built),
		KeyChainLen.Field(chainLen),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalRegistrationComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalRegistrationComplete, fields...)
	}
}
