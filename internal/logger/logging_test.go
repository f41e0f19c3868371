package logger

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNewWithWriterUsesPrefixAndGlobalLevel(t *testing.T) {
	prev := log.GetLevel()
	defer log.SetLevel(prev)

	log.SetLevel(log.WarnLevel)
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "tst")

	l.Debug("hidden")
	assert.Empty(t, buf.String())

	l.Warn("visible")
	assert.Contains(t, buf.String(), "tst")
	assert.Contains(t, buf.String(), "visible")
}
