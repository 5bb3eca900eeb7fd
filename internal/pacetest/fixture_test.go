package pacetest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsedISOMemoizes(t *testing.T) {
	first, err := ParsedISO()
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := ParsedISO()
	require.NoError(t, err)
	assert.Same(t, first, second, "ParsedISO should parse the fixture exactly once")
}

func TestParsedISOFixtureContents(t *testing.T) {
	iso, err := ParsedISO()
	require.NoError(t, err)

	assert.Equal(t, "1001.00c", iso.Zaid)
	reaction, ok := iso.Reactions[18]
	require.True(t, ok)
	require.NotNil(t, reaction.Q)
	assert.Equal(t, 41.0, *reaction.Q)
}
