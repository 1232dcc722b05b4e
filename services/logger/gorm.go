package logger

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger sends gorm's SQL logging through a Logger
type GormLogger struct {
	log           Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// NewGormLogger maps the application log level onto gorm's: "debug" traces
// every statement, "error" keeps only failures, anything else logs failures
// and queries slower than slowThreshold.
func NewGormLogger(log Logger, level string, slowThreshold time.Duration) *GormLogger {
	return &GormLogger{
		log:           log,
		level:         GormLevel(level),
		slowThreshold: slowThreshold,
	}
}

func GormLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return gormlogger.Info
	case "error":
		return gormlogger.Error
	default:
		return gormlogger.Warn
	}
}

func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	child := *l
	child.level = level
	return &child
}

func (l *GormLogger) Info(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		l.log.Info(msg, data...)
	}
}

func (l *GormLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.log.Warn(msg, data...)
	}
}

func (l *GormLogger) Error(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Error {
		l.log.Error(msg, data...)
	}
}

// Trace logs one executed statement. Record-not-found is a lookup result,
// not a failure.
func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)

	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		l.log.Error("sql failed: %v [%s rows:%d] %s", err, elapsed, rows, sql)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		l.log.Warn("slow sql >= %s [%s rows:%d] %s", l.slowThreshold, elapsed, rows, sql)
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		l.log.Debug("[%s rows:%d] %s", elapsed, rows, sql)
	}
}
