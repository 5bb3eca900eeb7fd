// Package header parses the ACE header line and the three fixed index
// arrays (IZAW, NXS, JXS) from both ASCII source text and the PACE binary
// cache, and exposes the 30-entry block-kind enumeration JXS is keyed by.
package header

import (
	"bufio"
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/latticeforge/pace/paceerr"
)

// boltzmannEVPerKelvin is the Boltzmann constant in eV/K; temperatureFromKT
// converts kT from MeV to eV before dividing by it.
const boltzmannEVPerKelvin = 8.617333262e-5

// Header carries the ACE file's identifying constants. Zaid is always
// non-empty; Szaid is set only for >=2.0.0 headers. Temperature is a pure
// function of KT.
type Header struct {
	Zaid                string
	Szaid               string
	AtomicMassFraction  float64
	KT                  float64
	Temperature         float64
}

func temperatureFromKT(kT float64) float64 {
	return kT * 1e6 / boltzmannEVPerKelvin
}

// readLines reads exactly n newline-terminated lines, trimming the
// trailing newline but preserving interior whitespace (fixed-width fields
// depend on it).
func readLines(r *bufio.Reader, n int) ([]string, error) {
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return nil, paceerr.IO("header", err)
		}
		lines = append(lines, strings.TrimRight(line, "\r\n"))
	}
	return lines, nil
}

// ParseASCII reads the ACE header, distinguishing the legacy format from
// the >=2.0.0 format by whether the first line contains "2.0." (spec.md
// §6). It consumes exactly the header lines: 2 for legacy, 4 for
// versioned.
func ParseASCII(r *bufio.Reader) (*Header, error) {
	lines, err := readLines(r, 2)
	if err != nil {
		return nil, err
	}

	var szaid string
	legacy := lines
	if strings.Contains(lines[0], "2.0.") {
		fields := strings.Fields(lines[0])
		if len(fields) < 2 {
			return nil, paceerr.FormatHeader("versioned header missing SZAID token", nil)
		}
		szaid = fields[1]
		legacy, err = readLines(r, 2)
		if err != nil {
			return nil, err
		}
	}

	fields := strings.Fields(legacy[0])
	if len(fields) < 3 {
		return nil, paceerr.FormatHeader("legacy header line has fewer than 3 tokens", nil)
	}
	zaid := fields[0]
	amf, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return nil, paceerr.FormatHeader("atomic mass fraction is not a float", err)
	}
	kT, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return nil, paceerr.FormatHeader("kT is not a float", err)
	}

	return &Header{
		Zaid:               zaid,
		Szaid:              szaid,
		AtomicMassFraction: amf,
		KT:                 kT,
		Temperature:        temperatureFromKT(kT),
	}, nil
}

// headerRegionSize is the fixed byte width of the binary header region
// (§4.4): 16 bytes SZAID + 16 bytes ZAID + 8 bytes amf + 8 bytes kT.
const headerRegionSize = 48

// DecodeBinary decodes the 48-byte header region of a PACE file.
func DecodeBinary(b []byte) (*Header, error) {
	if len(b) != headerRegionSize {
		return nil, paceerr.FormatHeader("binary header region has the wrong size", nil)
	}
	szaid := strings.TrimRight(string(b[0:16]), " ")
	zaid := strings.TrimRight(string(b[16:32]), " ")
	amf := math.Float64frombits(binary.NativeEndian.Uint64(b[32:40]))
	kT := math.Float64frombits(binary.NativeEndian.Uint64(b[40:48]))

	return &Header{
		Zaid:               zaid,
		Szaid:              szaid,
		AtomicMassFraction: amf,
		KT:                 kT,
		Temperature:        temperatureFromKT(kT),
	}, nil
}

// EncodeBinary writes the header into the fixed 48-byte layout, right-padding
// SZAID (or writing all spaces if absent) and ZAID to 16 bytes each.
func (h *Header) EncodeBinary() []byte {
	out := make([]byte, headerRegionSize)
	copy(out[0:16], padRight(h.Szaid, 16))
	copy(out[16:32], padRight(h.Zaid, 16))
	binary.NativeEndian.PutUint64(out[32:40], math.Float64bits(h.AtomicMassFraction))
	binary.NativeEndian.PutUint64(out[40:48], math.Float64bits(h.KT))
	return out
}

func padRight(s string, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = ' '
	}
	copy(out, s)
	return out
}
