// internal/log/log.go
package log

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// Init настраивает глобальный логгер. development включает
// человекочитаемый вывод вместо JSON.
func Init(development bool) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if development {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	mu.Lock()
	logger = l
	mu.Unlock()
	return l, nil
}

// L возвращает глобальный логгер; до Init — no-op.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Sync сбрасывает буферы логгера, вызывается при завершении.
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	_ = logger.Sync()
}
