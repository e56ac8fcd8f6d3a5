package logger

import (
	"sync"
	"testing"

	"github.com/quarmyne/otpauth/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGlobalLogger_LazyInitIsConcurrencySafe(t *testing.T) {
	mu.Lock()
	globalLogger = nil
	mu.Unlock()

	var wg sync.WaitGroup
	loggers := make([]*ZapLogger, 16)
	for i := range loggers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			loggers[i] = GetGlobalLogger()
		}(i)
	}
	wg.Wait()

	// Every caller sees the same, non-nil instance
	require.NotNil(t, loggers[0])
	for _, l := range loggers[1:] {
		assert.Same(t, loggers[0], l)
	}
}

func TestSetGlobalLogger(t *testing.T) {
	zapLogger, err := NewZapLogger(models.LoggerConfig{Level: "info"})
	require.NoError(t, err)

	SetGlobalLogger(zapLogger)

	assert.Same(t, zapLogger, GetGlobalLogger())
}
