package sanitize

import (
	"os"

	"github.com/rs/zerolog"
)

// logger is the package-level structured logger used for the "not an
// error, but logged" events. Defaults to a zerolog
// console writer at info level; callers in a service context should
// replace it with their own configured logger via SetLogger.
var logger zerolog.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(zerolog.InfoLevel)

// SetLogger replaces the package-level logger used for permission-denied
// and degraded-mode events.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// logPermissionDenied emits a debug event when a field/record is dropped
// because the device lacks the required capability, and records the
// decision with the active MetricsCollector. Not an error.
func logPermissionDenied(dataType DataType, capability Capability, deviceID string) {
	logger.Debug().
		Str("capability", string(capability)).
		Str("device_id", deviceID).
		Msg("sanitize: permission denied, emitting empty/reduced output")
	activeMetrics.RecordDecision(DecisionContext{
		DataType:   dataType,
		Action:     Drop,
		Capability: capability,
	})
}

// logDegraded emits an error event when pseudonym derivation falls back to
// the ANON- form, breaking the per-call determinism guarantee.
func logDegraded(msg, reason string) {
	logger.Error().
		Str("reason", reason).
		Msg("sanitize: " + msg)
}
