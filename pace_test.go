package pace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedWidthLine joins tokens into one line, each field 20 characters
// wide, matching the ACE fixed-width XXS convention (paceio's
// tokenFieldWidth, mirrored here since it is unexported there).
func fixedWidthLine(tokens ...string) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(fmt.Sprintf("%-20s", tok))
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

func TestLoadFromASCIIConvertsAndParses(t *testing.T) {
	dir := t.TempDir()
	acePath := writeFixtureACE(t, dir)

	iso, err := Load(acePath, nil)
	require.NoError(t, err)
	require.NotNil(t, iso)

	assert.Equal(t, "1001.00c", iso.Zaid)
	reaction, ok := iso.Reactions[18]
	require.True(t, ok)
	require.NotNil(t, reaction.Q)
	assert.Equal(t, 41.0, *reaction.Q)

	_, err = os.Stat(filepath.Join(dir, "1001.00c.pace"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "1001.00c.pace.pace.sum"))
	require.NoError(t, err)
}

func TestLoadSkipsReconversionWhenFingerprintMatches(t *testing.T) {
	dir := t.TempDir()
	acePath := writeFixtureACE(t, dir)

	opts := DefaultOptions()
	_, err := Load(acePath, opts)
	require.NoError(t, err)

	pacePath := filepath.Join(dir, "1001.00c.pace")
	info1, err := os.Stat(pacePath)
	require.NoError(t, err)

	_, err = Load(acePath, opts)
	require.NoError(t, err)

	info2, err := os.Stat(pacePath)
	require.NoError(t, err)
	assert.Equal(t, info1.ModTime(), info2.ModTime(), "second Load should not rewrite an up-to-date cache")
}

func TestLoadFromExistingPACEFile(t *testing.T) {
	dir := t.TempDir()
	acePath := writeFixtureACE(t, dir)

	_, err := Load(acePath, nil)
	require.NoError(t, err)

	iso, err := Load(filepath.Join(dir, "1001.00c.pace"), nil)
	require.NoError(t, err)
	assert.Equal(t, "1001.00c", iso.Zaid)
}

func TestIsASCIIDetectsBinaryPACEFile(t *testing.T) {
	dir := t.TempDir()
	acePath := writeFixtureACE(t, dir)

	_, err := Load(acePath, nil)
	require.NoError(t, err)

	ascii, err := isASCII(filepath.Join(dir, "1001.00c.pace"), 1024)
	require.NoError(t, err)
	assert.False(t, ascii)
}
