// SPDX-License-Identifier: MIT

package tracer

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/cofactor/adjugate"
)

// Logger forwards events to a zap logger at a fixed level (debug by default).
type Logger struct {
	log   *zap.Logger
	level zapcore.Level
}

// NewLogger wraps log; a nil log yields a no-op logger.
func NewLogger(log *zap.Logger, level zapcore.Level) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{log: log, level: level}
}

// Emit writes one structured entry per event.
func (l *Logger) Emit(ev adjugate.TraceEvent) {
	ce := l.log.Check(l.level, "trace step")
	if ce == nil {
		return
	}
	fields := []zap.Field{
		zap.Int("seq", ev.Seq),
		zap.Stringer("kind", ev.Kind),
		zap.Uint8("step", uint8(ev.Step)),
		zap.Int("depth", ev.Depth),
	}
	if ev.Title != "" {
		fields = append(fields, zap.String("title", ev.Title))
	}
	if ev.Message != "" {
		fields = append(fields, zap.String("message", ev.Message))
	}
	if ev.Matrix != nil {
		fields = append(fields, zap.Any("matrix", ev.Matrix.ToRows()))
	}
	if ev.Kind == adjugate.KindResult {
		fields = append(fields, zap.Float64("value", ev.Value))
	}
	ce.Write(fields...)
}
