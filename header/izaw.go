package header

import (
	"bufio"
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/latticeforge/pace/paceerr"
)

// izawPairCount is the fixed number of (ZA, AWR) pairs in an IZAW array.
const izawPairCount = 16

// izawFieldWidth is the fixed-width "I7,F11.0" pair field (7 + 11 chars).
const izawFieldWidth = 18

// IZAWPair is one S(alpha,beta) thermal-scattering identifier/weight-ratio
// pair.
type IZAWPair struct {
	ZA  uint64
	AWR float64
}

// IZAW is the ordered sequence of exactly 16 IZAWPair entries.
type IZAW [izawPairCount]IZAWPair

// ParseASCIIIZAW reads the 4-line, 4-pair-per-line IZAW array.
func ParseASCIIIZAW(r *bufio.Reader) (IZAW, error) {
	var out IZAW
	lines, err := readLines(r, 4)
	if err != nil {
		return out, err
	}
	idx := 0
	for _, line := range lines {
		for pair := 0; pair < 4; pair++ {
			start := pair * izawFieldWidth
			end := start + izawFieldWidth
			if end > len(line) {
				return out, paceerr.FormatHeader("IZAW line shorter than 4 fixed-width pairs", nil)
			}
			zaStr := strings.TrimSpace(line[start : start+7])
			awrStr := strings.TrimSpace(line[start+7 : end])
			za, err := strconv.ParseUint(zaStr, 10, 64)
			if err != nil {
				return out, paceerr.FormatHeader("IZAW ZA field is not an integer", err)
			}
			awr, err := strconv.ParseFloat(awrStr, 64)
			if err != nil {
				return out, paceerr.FormatHeader("IZAW AWR field is not a float", err)
			}
			out[idx] = IZAWPair{ZA: za, AWR: awr}
			idx++
		}
	}
	return out, nil
}

// izawRegionSize is the fixed byte width of the binary IZAW region (§4.4):
// 16 pairs of (i64, f64).
const izawRegionSize = izawPairCount * 16

// DecodeBinaryIZAW decodes the 256-byte IZAW region of a PACE file.
func DecodeBinaryIZAW(b []byte) (IZAW, error) {
	var out IZAW
	if len(b) != izawRegionSize {
		return out, paceerr.FormatHeader("binary IZAW region has the wrong size", nil)
	}
	for i := 0; i < izawPairCount; i++ {
		off := i * 16
		za := binary.NativeEndian.Uint64(b[off : off+8])
		awr := math.Float64frombits(binary.NativeEndian.Uint64(b[off+8 : off+16]))
		out[i] = IZAWPair{ZA: za, AWR: awr}
	}
	return out, nil
}

// EncodeBinary writes the IZAW array into its fixed 256-byte layout.
func (a IZAW) EncodeBinary() []byte {
	out := make([]byte, izawRegionSize)
	for i, pair := range a {
		off := i * 16
		binary.NativeEndian.PutUint64(out[off:off+8], pair.ZA)
		binary.NativeEndian.PutUint64(out[off+8:off+16], math.Float64bits(pair.AWR))
	}
	return out
}
