package logger

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimpleLogger_FieldsAndLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger(&buf, LevelInfo)

	log.Debug("hidden", "k", 1)
	log.Info("leaderboard computed", "tournament", "t-1", "mode", "stableford")
	log.Error("finalize failed", errors.New("boom"), "tournament", "t-1")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO: leaderboard computed tournament=t-1 mode=stableford")
	assert.Contains(t, out, "ERROR: finalize failed: boom tournament=t-1")
}

func TestFormatFields_OddCount(t *testing.T) {
	assert.Equal(t, " a=1 b=?", formatFields([]interface{}{"a", 1, "b"}))
	assert.Equal(t, "", formatFields(nil))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel(""))
}
