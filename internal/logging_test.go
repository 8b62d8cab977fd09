package internal

import (
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	lg := NewLogger(&out, "warn")
	assert.Equal(log.WarnLevel, lg.GetLevel())
	assert.Equal("mipslite", lg.GetPrefix())

	lg.Info("hidden")
	lg.Warn("shown")
	assert.NotContains(out.String(), "hidden")
	assert.Contains(out.String(), "shown")

	t.Setenv(ENV_LOG_LEVEL, "debug")
	t.Setenv(ENV_LOG_PREFIX, "test")
	lg = NewLogger(&out, "")
	assert.Equal(log.DebugLevel, lg.GetLevel())
	assert.Equal("test", lg.GetPrefix())

	lg = NewLogger(&out, "bogus")
	assert.Equal(log.InfoLevel, lg.GetLevel())
}
