package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerLevels(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, newLogger("debug").GetLevel())
	assert.Equal(t, logrus.ErrorLevel, newLogger("error").GetLevel())
}

func TestNewLoggerFallsBackToWarn(t *testing.T) {
	assert.Equal(t, logrus.WarnLevel, newLogger("not a level").GetLevel())
	assert.Equal(t, logrus.WarnLevel, newLogger("").GetLevel())
}

func TestGetLoggerNeverNil(t *testing.T) {
	assert.NotNil(t, GetLogger())
}
