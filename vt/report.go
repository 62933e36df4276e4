package vt

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// ErrorKind enumerates the error taxonomy of spec.md §7. None of these
// ever propagate to the writer side; they are always *reported*.
type ErrorKind int

const (
	ErrMalformedUTF8 ErrorKind = iota
	ErrCSITooLong
	ErrTooManyCSIParameters
	ErrCSIDigitOverflow
	ErrInvalidCSIByte
	ErrUnknownFinal
	ErrUnknownStringCode
	ErrEscapeCodeTooLong
	ErrPendingStopWithoutStart
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMalformedUTF8:
		return "malformed_utf8"
	case ErrCSITooLong:
		return "csi_too_long"
	case ErrTooManyCSIParameters:
		return "too_many_csi_parameters"
	case ErrCSIDigitOverflow:
		return "csi_digit_overflow"
	case ErrInvalidCSIByte:
		return "invalid_csi_byte"
	case ErrUnknownFinal:
		return "unknown_final_or_modifier"
	case ErrUnknownStringCode:
		return "unknown_string_code"
	case ErrEscapeCodeTooLong:
		return "escape_code_too_long"
	case ErrPendingStopWithoutStart:
		return "pending_stop_without_start"
	default:
		return "unknown"
	}
}

// Report is one entry delivered to a ReportSink.
type Report struct {
	Kind    ErrorKind
	Message string
	// Representation is a short, human-inspectable rendering of the
	// offending parameters or the first bytes of an escape payload
	// (capped at 64 bytes per spec.md §7).
	Representation string
}

// ReportSink is the single debug/report sink every parser error flows
// through (spec.md §7): a callback in dump/test mode, a structured log
// in production.
type ReportSink interface {
	Report(r Report)
}

// CallbackSink adapts a plain function to ReportSink, for dump-mode or
// test harnesses that want to assert on exactly what was reported.
type CallbackSink func(Report)

func (f CallbackSink) Report(r Report) { f(r) }

// ZapSink is the production ReportSink, backed by go.uber.org/zap the way
// buildkite-agent's own services log structured events. It never panics
// and never blocks the parser on I/O failures from the underlying core.
type ZapSink struct {
	logger *zap.Logger
}

// NewZapSink wraps an existing *zap.Logger. A nil logger falls back to
// zap.NewNop(), so a parser built without explicit logging configured
// never crashes on a Report call.
func NewZapSink(logger *zap.Logger) *ZapSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapSink{logger: logger}
}

func (s *ZapSink) Report(r Report) {
	s.logger.Warn("vt: "+r.Kind.String(),
		zap.String("message", r.Message),
		zap.String("representation", r.Representation),
	)
}

func truncateRepr(b []byte, max int) string {
	if len(b) > max {
		return fmt.Sprintf("%q (+%s more)", b[:max], humanize.Bytes(uint64(len(b)-max)))
	}
	return fmt.Sprintf("%q", b)
}
