package header

import (
	"bufio"
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/latticeforge/pace/paceerr"
)

// nxsWordCount is the fixed number of integers in an NXS array, of which
// 11 are named.
const nxsWordCount = 16

// NXS is the fixed record of 16 unsigned integers describing the structure
// of the XXS array to follow.
type NXS struct {
	XxsLen uint64 // number of entries (words) in XXS
	Za     uint64 // ZA of isotope
	Nes    uint64 // number of energies
	Ntr    uint64 // number of reactions excluding elastic scattering
	Nr     uint64 // number of reactions with secondary neutrons excluding elastic
	Ntrp   uint64 // number of photon production reactions
	Ntype  uint64 // number of particle types with production data
	Npcr   uint64 // number of delayed-neutron precursor families
	S      uint64 // excited state (>=2.0.0 header only)
	Z      uint64 // atomic number (>=2.0.0 header only)
	A      uint64 // atomic mass number (>=2.0.0 header only)

	raw [nxsWordCount]uint64
}

// ParseASCIINXS reads the 2-line, 8-integer-per-line NXS array.
func ParseASCIINXS(r *bufio.Reader) (*NXS, error) {
	lines, err := readLines(r, 2)
	if err != nil {
		return nil, err
	}
	words, err := parseWhitespaceInts(lines, nxsWordCount, "NXS")
	if err != nil {
		return nil, err
	}
	return nxsFromWords(words), nil
}

func parseWhitespaceInts(lines []string, want int, subject string) ([]uint64, error) {
	out := make([]uint64, 0, want)
	for _, line := range lines {
		for _, tok := range strings.Fields(line) {
			v, err := strconv.ParseUint(tok, 10, 64)
			if err != nil {
				return nil, paceerr.FormatHeader(subject+" field is not an integer", err)
			}
			out = append(out, v)
		}
	}
	if len(out) < want {
		return nil, paceerr.FormatHeader(subject+" array shorter than expected", nil)
	}
	return out[:want], nil
}

func nxsFromWords(w []uint64) *NXS {
	n := &NXS{
		XxsLen: w[0], Za: w[1], Nes: w[2], Ntr: w[3], Nr: w[4],
		Ntrp: w[5], Ntype: w[6], Npcr: w[7], S: w[8], Z: w[9], A: w[10],
	}
	copy(n.raw[:], w)
	return n
}

// nxsRegionSize is the fixed byte width of the binary NXS region (§4.4):
// 16 x int64.
const nxsRegionSize = nxsWordCount * 8

// DecodeBinaryNXS decodes the 128-byte NXS region of a PACE file.
func DecodeBinaryNXS(b []byte) (*NXS, error) {
	if len(b) != nxsRegionSize {
		return nil, paceerr.FormatHeader("binary NXS region has the wrong size", nil)
	}
	words := make([]uint64, nxsWordCount)
	for i := range words {
		words[i] = binary.NativeEndian.Uint64(b[i*8 : i*8+8])
	}
	return nxsFromWords(words), nil
}

// EncodeBinary writes the NXS array into its fixed 128-byte layout.
func (n *NXS) EncodeBinary() []byte {
	out := make([]byte, nxsRegionSize)
	for i, v := range n.raw {
		binary.NativeEndian.PutUint64(out[i*8:i*8+8], v)
	}
	return out
}

// ValueAt returns the 1-indexed value from the ACE spec's own NXS
// numbering (1..11, the only named fields); any other index reports
// absent.
func (n *NXS) ValueAt(index int) (uint64, bool) {
	const namedFields = 11
	if index < 1 || index > namedFields {
		return 0, false
	}
	return n.raw[index-1], true
}
