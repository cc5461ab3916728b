// internal/logger/buffer_test.go
package logger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLogBufferRetainsRecentEntries(t *testing.T) {
	buf := NewLogBuffer(4)

	for i := 0; i < 6; i++ {
		_, err := buf.Write([]byte(fmt.Sprintf(`{"level":"info","msg":"entry %d"}`+"\n", i)))
		require.NoError(t, err)
	}

	assert.Equal(t, 4, buf.Len())
	assert.Equal(t, uint64(6), buf.Total())

	recent := buf.Recent(0)
	require.Len(t, recent, 4)
	assert.Equal(t, "entry 2", recent[0].Message)
	assert.Equal(t, "entry 5", recent[3].Message)

	limited := buf.Recent(2)
	require.Len(t, limited, 2)
	assert.Equal(t, "entry 4", limited[0].Message)
}

func TestLogBufferKeepsUnparseableLines(t *testing.T) {
	buf := NewLogBuffer(4)
	_, err := buf.Write([]byte("not json\n"))
	require.NoError(t, err)

	recent := buf.Recent(0)
	require.Len(t, recent, 1)
	assert.Equal(t, "not json", recent[0].Raw)
}

func TestTUILoggerWritesToBuffer(t *testing.T) {
	buf := NewLogBuffer(16)
	log, err := CreateTUILogger(true, buf)
	require.NoError(t, err)

	log.Info("scenario saved", zap.String("name", "spring lot"))
	log.Debug("recompute")
	require.NoError(t, log.Sync())

	recent := buf.Recent(0)
	require.Len(t, recent, 2)
	assert.Equal(t, "scenario saved", recent[0].Message)
	assert.Equal(t, "info", recent[0].Level)
	assert.Equal(t, "debug", recent[1].Level)
}

func TestTUILoggerRequiresBuffer(t *testing.T) {
	_, err := CreateTUILogger(false, nil)
	assert.Error(t, err)
}
