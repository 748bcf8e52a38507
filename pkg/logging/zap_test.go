package logutils_test

import (
	"testing"

	logutils "github.com/10Narratives/pager/pkg/logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	log, err := logutils.NewLogger("prod")
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zap.DebugLevel))
	require.True(t, log.Core().Enabled(zap.InfoLevel))

	log, err = logutils.NewLogger("dev")
	require.NoError(t, err)
	require.True(t, log.Core().Enabled(zap.DebugLevel))

	log, err = logutils.NewLogger("prod", "warn")
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zap.InfoLevel))

	log, err = logutils.NewLogger("nop")
	require.NoError(t, err)
	require.False(t, log.Core().Enabled(zap.ErrorLevel))

	_, err = logutils.NewLogger("dev", "loud")
	require.Error(t, err)
}
