package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func TestGolden_AddOutput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := writeMatrix(t, dir, "a.txt", matrixA)
	b := writeMatrix(t, dir, "b.txt", matrixB)

	out, err := runCommand(t, "add", a, b)
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "add_output", []byte(out))
}
