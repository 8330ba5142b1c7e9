package logger

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"

	"payhub/api/internal/config"

	"github.com/golang-cz/devslog"
	"github.com/google/uuid"
)

type Logger struct{}

func Init(config *config.Config) Logger {
	slogOpts := &slog.HandlerOptions{}

	if !config.Prod_env {
		slogOpts.Level = slog.LevelDebug
	}

	// new logger with options
	opts := &devslog.Options{
		HandlerOptions:    slogOpts,
		MaxSlicePrintSize: 4,
		SortKeys:          true,
		NewLineAfterLog:   true,
	}

	logger := slog.New(devslog.NewHandler(os.Stdout, opts))

	slog.SetDefault(logger)

	return Logger{}
}

// example Info("gateway activated", "store_id", storeId)
func (l Logger) Info(message string, args ...any) {
	_, file, line, _ := runtime.Caller(1)
	printLog(LL_INFO, message, file, line, args...)
}

// example Error("activation failed", "store_id", storeId, "error", err.Error())
func (l Logger) Error(message string, args ...any) {
	_, file, line, _ := runtime.Caller(1)
	printLog(LL_ERROR, message, file, line, args...)
}

// use only for fatal errors
func (l Logger) Fatal(message string, args ...any) {
	_, file, line, _ := runtime.Caller(1)
	printLog(LL_FATAL, message, file, line, args...)
}

func (l Logger) Debug(message string, args ...any) {
	_, file, line, _ := runtime.Caller(1)
	printLog(LL_DEBUG, message, file, line, args...)
}

// called by the Templ* helpers, skips one more frame so the source points at
// the real call site
func (l Logger) templLog(ll LogLevel, message string, args ...any) {
	_, file, line, _ := runtime.Caller(2)
	printLog(ll, message, file, line, args...)
}

func printLog(ll LogLevel, message string, file string, line int, args ...any) {
	args = append(args, "source", file+":"+strconv.Itoa(line))
	switch ll {
	case LL_ERROR:
		slog.Error(message, args...)
	case LL_INFO:
		slog.Info(message, args...)
	case LL_FATAL:
		slog.Error(message, args...)
	case LL_DEBUG:
		slog.Debug(message, args...)
	}
}

func GenErrorId() string {
	var errorId string
	uuid, err := uuid.NewRandom()
	if err != nil {
		errorId = NA
	} else {
		errorId = uuid.String()
	}
	return errorId
}
