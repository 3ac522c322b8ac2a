package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a production logger at level. With path set, output goes to
// that file instead of stderr so terminal screens stay clean.
func New(level string, path string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	if path != "" {
		config.OutputPaths = []string{path}
		config.ErrorOutputPaths = []string{path}
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// ForScreen is for commands that own the terminal: a file logger when path
// is set, otherwise nothing.
func ForScreen(level string, path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	return New(level, path)
}
