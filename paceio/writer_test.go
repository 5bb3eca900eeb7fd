package paceio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticeforge/pace/header"
)

// fixedWidthLine joins tokens into one 80-column-style line, each field
// tokenFieldWidth characters wide, right-padded with spaces.
func fixedWidthLine(tokens ...string) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(fmt.Sprintf("%-*s", tokenFieldWidth, tok))
	}
	return sb.String()
}

// writeFixtureACE writes the MT-18 fixture (spec.md §8 scenarios 3-4) as a
// legacy-header ACE ASCII file and returns its path.
func writeFixtureACE(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "fixture.ace")

	var sb strings.Builder
	sb.WriteString(" 1001.00c    0.999167   2.5301E-08   01/01/18\n")
	sb.WriteString("fixture comment\n")
	izawLine := "      0         0.      0         0.      0         0.      0         0.\n"
	for i := 0; i < 4; i++ {
		sb.WriteString(izawLine)
	}
	sb.WriteString("      23    1001       3       1       0       0       0       0\n")
	sb.WriteString("       0       0       0       0       0       0       0       0\n")
	sb.WriteString("    1    0   16   17    0   18   19    0\n")
	sb.WriteString("    0    0    0    0    0    0    0    0\n")
	sb.WriteString("    0    0    0    0    0    0    0    0\n")
	sb.WriteString("    0    0    0    0    0    0    0   23\n")
	sb.WriteString(fixedWidthLine("1.0", "2.0", "3.0", "100.0") + "\n")
	sb.WriteString(fixedWidthLine("150.0", "200.0", "0.1", "0.15") + "\n")
	sb.WriteString(fixedWidthLine("0.2", "5.0", "6.0", "7.0") + "\n")
	sb.WriteString(fixedWidthLine("2.0", "4.0", "6.0", "18") + "\n")
	sb.WriteString(fixedWidthLine("41.0", "1", "1", "3") + "\n")
	sb.WriteString(fixedWidthLine("17.0", "38.0", "100.0") + "\n")

	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o644))
	return path
}

func TestConvertProducesPACEFile(t *testing.T) {
	dir := t.TempDir()
	acePath := writeFixtureACE(t, dir)

	outPath, err := Convert(acePath, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "1001.00c.pace"), outPath)

	info, err := os.Stat(outPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(headerSize+izawSize+nxsSize+jxsSize))
}

func TestConvertThenMapRoundTrip(t *testing.T) {
	dir := t.TempDir()
	acePath := writeFixtureACE(t, dir)

	outPath, err := Convert(acePath, 0, 0)
	require.NoError(t, err)

	mapped, err := Map(outPath)
	require.NoError(t, err)
	defer mapped.Close()

	assert.Equal(t, "1001.00c", mapped.Header.Zaid)
	assert.InDelta(t, 0.999167, mapped.Header.AtomicMassFraction, 1e-9)
	assert.Equal(t, uint64(23), mapped.NXS.XxsLen)
	assert.Equal(t, uint64(3), mapped.NXS.Nes)
	assert.Equal(t, uint64(1), mapped.NXS.Ntr)
	assert.Equal(t, uint64(1), mapped.JXS.Get(header.ESZ))
	require.Len(t, mapped.XXS, 23)
	assert.InDelta(t, 1.0, mapped.XXS[0], 1e-9)
	assert.InDelta(t, 2.0, mapped.XXS[1], 1e-9)
	assert.InDelta(t, 3.0, mapped.XXS[2], 1e-9)
}

func TestParseTokenIntThenFloat(t *testing.T) {
	v, err := parseToken("18")
	require.NoError(t, err)
	assert.NotEqual(t, 18.0, v) // bit pattern of int 18, not the float value 18.0

	v, err = parseToken("18.0")
	require.NoError(t, err)
	assert.Equal(t, 18.0, v)

	_, err = parseToken("not-a-number")
	assert.Error(t, err)
}
