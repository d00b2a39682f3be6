package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultFileName(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)

	name := resultFileName("result", ts)
	assert.True(t, strings.HasPrefix(name, "result-20240301-102030-"), name)
	assert.True(t, strings.HasSuffix(name, ".txt"), name)

	parts := strings.Split(strings.TrimSuffix(name, ".txt"), "-")
	require.NotEmpty(t, parts)
	assert.Len(t, parts[len(parts)-1], 8, "short uuid suffix")
}

func TestResultFileName_Unique(t *testing.T) {
	t.Parallel()

	ts := time.Now()
	assert.NotEqual(t, resultFileName("result", ts), resultFileName("result", ts),
		"random suffix disambiguates same-second results")
}
