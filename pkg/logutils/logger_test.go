package logutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_AppendsToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "blob.log")

	for _, msg := range []string{"first", "second"} {
		l, closer, err := New("info", file)
		require.NoError(t, err)
		l.Info().Msg(msg)
		l.Debug().Msg("filtered")
		closer()
	}

	data, err := os.ReadFile(file)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"message":"first"`)
	assert.Contains(t, lines[1], `"message":"second"`)
	assert.Contains(t, lines[0], `"time":`)
}

func TestNew_InvalidLevel(t *testing.T) {
	_, closer, err := New("loud", "")
	require.Error(t, err)
	assert.NotNil(t, closer)
}
