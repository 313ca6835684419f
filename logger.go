package fluentsql

import (
	"fmt"

	"go.uber.org/zap"
)

type LogLevel int

const (
	LogLevelDev LogLevel = iota
	LogLevelProd
)

// Logger receives the builder's diagnostics: rendered statements at debug
// level and ignored or contradictory configuration at warn level.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type zapLogger struct {
	l *zap.SugaredLogger
}

// NewLogger builds a zap backed Logger from zap's development or production config.
func NewLogger(env LogLevel) (Logger, error) {
	if env == LogLevelDev {
		l, err := zap.NewDevelopmentConfig().Build()
		if err != nil {
			return nil, err
		}
		return &zapLogger{l.Sugar()}, nil
	} else if env == LogLevelProd {
		l, err := zap.NewProductionConfig().Build()
		if err != nil {
			return nil, err
		}
		return &zapLogger{l.Sugar()}, nil
	} else {
		return nil, fmt.Errorf("log level should be either LogLevelDev or LogLevelProd")
	}
}

// ZapLogger wraps an already configured zap logger.
func ZapLogger(l *zap.Logger) Logger {
	return &zapLogger{l.Sugar()}
}

func nopLogger() Logger {
	return &zapLogger{zap.NewNop().Sugar()}
}

func (z *zapLogger) Debugf(format string, args ...any) { z.l.Debugf(format, args...) }
func (z *zapLogger) Infof(format string, args ...any)  { z.l.Infof(format, args...) }
func (z *zapLogger) Warnf(format string, args ...any)  { z.l.Warnf(format, args...) }
func (z *zapLogger) Errorf(format string, args ...any) { z.l.Errorf(format, args...) }

// log returns the builder's logger, or a no-op one for a zero value builder.
func (b *QueryBuilder) log() Logger {
	if b.logger == nil {
		return nopLogger()
	}
	return b.logger
}
