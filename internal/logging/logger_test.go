package logging_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/saadjs/fitmentor/internal/logging"
)

func TestGetLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, logrus.DebugLevel, logging.GetLevel("DEBUG"))
	assert.Equal(t, logrus.InfoLevel, logging.GetLevel(" info "))
	assert.Equal(t, logrus.ErrorLevel, logging.GetLevel("error"))
	assert.Equal(t, logrus.TraceLevel, logging.GetLevel("trace"))
	assert.Equal(t, logrus.WarnLevel, logging.GetLevel("warn"))
	assert.Equal(t, logrus.WarnLevel, logging.GetLevel(""))
	assert.Equal(t, logrus.WarnLevel, logging.GetLevel("verbose"))
}

func TestSetupWritesToStderrWithoutFile(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := logrus.New()
	logging.Setup(logger, logging.LoggerSetupParams{LogLevel: "warn", LogFormatJSON: true, Stderr: buf})

	logger.Info("hidden")
	logger.WithField("key", "fitness_mentor_meals").Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"key":"fitness_mentor_meals"`)
}

func TestSetupRotatesIntoLogFile(t *testing.T) {
	t.Parallel()

	logger := logrus.New()
	name := filepath.Join(t.TempDir(), "fitmentor")
	logging.Setup(logger, logging.LoggerSetupParams{LogFileName: name, LogLevel: "info"})

	lj, ok := logger.Out.(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, name+".log", lj.Filename)
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
	require.NoError(t, lj.Close())
}
