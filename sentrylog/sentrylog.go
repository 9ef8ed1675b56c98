package sentrylog

// GORM logger which also captures errors to Sentry.  Sentry is configured
// from the environment (SENTRY_DSN); with no DSN it runs disabled, which is
// what we want for local development and tests.

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/getsentry/sentry-go"
	logger2 "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// Config logger config
type Config struct {
	SlowThreshold             time.Duration
	IgnoreRecordNotFoundError bool
	LogLevel                  logger2.LogLevel
}

// New initialize logger
func New(config Config) logger2.Interface {
	err := sentry.Init(sentry.ClientOptions{
		AttachStacktrace: true,
	})
	defer sentry.Flush(2 * time.Second)

	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}

	return &logger{
		Config: config,
	}
}

type logger struct {
	Config
}

// LogMode log mode
func (l *logger) LogMode(level logger2.LogLevel) logger2.Interface {
	newlogger := *l
	newlogger.LogLevel = level
	return &newlogger
}

func (l logger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger2.Info {
		fmt.Printf("%s\n[info] "+msg+"\n", append([]interface{}{utils.FileWithLineNum()}, data...)...)
	}
}

// Warn print warn messages
func (l logger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger2.Warn {
		fmt.Printf("%s\n[warn] "+msg+"\n", append([]interface{}{utils.FileWithLineNum()}, data...)...)
	}
}

// Error print error messages and send to Sentry
func (l logger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= logger2.Error {
		err := fmt.Errorf("%s\n[error] "+msg, append([]interface{}{utils.FileWithLineNum()}, data...)...)
		fmt.Println(err.Error())
		sentry.CaptureMessage(err.Error())
	}
}

// Trace print sql message
func (l logger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= logger2.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && l.LogLevel >= logger2.Error && (!errors.Is(err, logger2.ErrRecordNotFound) || !l.IgnoreRecordNotFoundError):
		sql, rows := fc()
		fmt.Printf("%s %s\n[%.3fms] [rows:%v] %s\n", utils.FileWithLineNum(), err, float64(elapsed.Nanoseconds())/1e6, rows, sql)
		sentry.CaptureMessage(err.Error())
	case elapsed > l.SlowThreshold && l.SlowThreshold != 0 && l.LogLevel >= logger2.Warn:
		sql, rows := fc()
		fmt.Printf("%s SLOW SQL >= %v\n[%.3fms] [rows:%v] %s\n", utils.FileWithLineNum(), l.SlowThreshold, float64(elapsed.Nanoseconds())/1e6, rows, sql)
	case l.LogLevel == logger2.Info:
		sql, rows := fc()
		fmt.Printf("%s\n[%.3fms] [rows:%v] %s\n", utils.FileWithLineNum(), float64(elapsed.Nanoseconds())/1e6, rows, sql)
	}
}
