package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pietro-andreoli/bboracle/config"
)

const loggerName = "BestBuyAPI"

// newLogger logs "<time> : <name> : <LEVEL> : <message>" to stderr and,
// when configured, to a log file.
func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if err := level.Set(strings.ToLower(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	outputs := []string{"stderr"}
	if file := cfg.File; file != "" {
		if file == "default" {
			file = config.DefaultLogFile()
		}
		if err := os.MkdirAll(filepath.Dir(file), 0700); err != nil {
			return nil, err
		}
		outputs = append(outputs, file)
	}

	zapCfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(level),
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:          "ts",
			LevelKey:         "level",
			MessageKey:       "message",
			EncodeTime:       encodeTimeAndName,
			EncodeLevel:      zapcore.CapitalLevelEncoder,
			ConsoleSeparator: " : ",
		},
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
	}

	return zapCfg.Build()
}

// The console encoder always writes the level before the logger name,
// so the name is appended as a second element of the time field.
func encodeTimeAndName(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05"))
	enc.AppendString(loggerName)
}
