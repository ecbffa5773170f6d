package decoder

import (
	"fmt"

	"go.uber.org/zap"
)

// FieldSink receives every field as the decoder reads it. Scope names the record the
// fields belong to: "block", "tx", "txin", "txout" or "witness".
type FieldSink interface {
	Emit(scope string, fields ...zap.Field)
}

type loggerSink struct {
	logger *zap.Logger
}

// NewLoggerSink emits each field set as one debug entry of logger.
func NewLoggerSink(logger *zap.Logger) FieldSink {
	return &loggerSink{logger: logger}
}

func (s *loggerSink) Emit(scope string, fields ...zap.Field) {
	s.logger.Debug(scope, fields...)
}

// hex32 prints as eight upper-case hex digits.
type hex32 uint32

func (h hex32) String() string {
	return fmt.Sprintf("%08X", uint32(h))
}
