package header

import (
	"bufio"
	"encoding/binary"

	"github.com/latticeforge/pace/paceerr"
)

// jxsWordCount is the fixed number of integers in a JXS array.
const jxsWordCount = 32

// BlockKind enumerates every block kind a JXS slot can name. Two of the
// 32 JXS slots (indices 27 and 28 below) are reserved and unnamed.
type BlockKind int

const (
	ESZ BlockKind = iota
	NU
	MTR
	LQR
	TYR
	LSIG
	SIG
	LAND
	AND
	LDLW
	DLW
	GPD
	MTRP
	LSIGP
	SIGP
	LANDP
	ANDP
	LDLWP
	DLWP
	YP
	FIS
	END
	LUND
	DNU
	BDD
	DNEDL
	DNED
	PTYPE
	NTRO
	NEXT
)

func (k BlockKind) String() string {
	switch k {
	case ESZ:
		return "ESZ"
	case NU:
		return "NU"
	case MTR:
		return "MTR"
	case LQR:
		return "LQR"
	case TYR:
		return "TYR"
	case LSIG:
		return "LSIG"
	case SIG:
		return "SIG"
	case LAND:
		return "LAND"
	case AND:
		return "AND"
	case LDLW:
		return "LDLW"
	case DLW:
		return "DLW"
	case GPD:
		return "GPD"
	case MTRP:
		return "MTRP"
	case LSIGP:
		return "LSIGP"
	case SIGP:
		return "SIGP"
	case LANDP:
		return "LANDP"
	case ANDP:
		return "ANDP"
	case LDLWP:
		return "LDLWP"
	case DLWP:
		return "DLWP"
	case YP:
		return "YP"
	case FIS:
		return "FIS"
	case END:
		return "END"
	case LUND:
		return "LUND"
	case DNU:
		return "DNU"
	case BDD:
		return "BDD"
	case DNEDL:
		return "DNEDL"
	case DNED:
		return "DNED"
	case PTYPE:
		return "PTYPE"
	case NTRO:
		return "NTRO"
	case NEXT:
		return "NEXT"
	default:
		return "UNKNOWN"
	}
}

// slotFor maps each named block kind to its 0-based slot in the 32-word
// JXS array. Slots 27 and 28 have no named kind in the ACE spec.
func slotFor(kind BlockKind) int {
	switch kind {
	case ESZ:
		return 0
	case NU:
		return 1
	case MTR:
		return 2
	case LQR:
		return 3
	case TYR:
		return 4
	case LSIG:
		return 5
	case SIG:
		return 6
	case LAND:
		return 7
	case AND:
		return 8
	case LDLW:
		return 9
	case DLW:
		return 10
	case GPD:
		return 11
	case MTRP:
		return 12
	case LSIGP:
		return 13
	case SIGP:
		return 14
	case LANDP:
		return 15
	case ANDP:
		return 16
	case LDLWP:
		return 17
	case DLWP:
		return 18
	case YP:
		return 19
	case FIS:
		return 20
	case END:
		return 21
	case LUND:
		return 22
	case DNU:
		return 23
	case BDD:
		return 24
	case DNEDL:
		return 25
	case DNED:
		return 26
	case PTYPE:
		return 29
	case NTRO:
		return 30
	case NEXT:
		return 31
	default:
		panic("header: unknown BlockKind")
	}
}

// allBlockKinds lists every named block kind, in JXS slot order.
var allBlockKinds = []BlockKind{
	ESZ, NU, MTR, LQR, TYR, LSIG, SIG, LAND, AND, LDLW, DLW, GPD, MTRP,
	LSIGP, SIGP, LANDP, ANDP, LDLWP, DLWP, YP, FIS, END, LUND, DNU, BDD,
	DNEDL, DNED, PTYPE, NTRO, NEXT,
}

// JXS is the fixed record of 32 unsigned integers; each slot is either 0
// (block absent) or a 1-based index into XXS where that block starts.
type JXS struct {
	raw [jxsWordCount]uint64
}

// Get returns the raw JXS slot value for kind: 0 means absent, otherwise a
// 1-based XXS start index.
func (j *JXS) Get(kind BlockKind) uint64 {
	return j.raw[slotFor(kind)]
}

// ValueAt returns the 1-indexed value from the ACE spec's own JXS
// numbering (1..27, 30..32); slots 28 and 29 are reserved and report
// absent.
func (j *JXS) ValueAt(index int) (uint64, bool) {
	if index < 1 || index > jxsWordCount || index == 28 || index == 29 {
		return 0, false
	}
	return j.raw[index-1], true
}

// ParseASCIIJXS reads the 4-line, 8-integer-per-line JXS array.
func ParseASCIIJXS(r *bufio.Reader) (*JXS, error) {
	lines, err := readLines(r, 4)
	if err != nil {
		return nil, err
	}
	words, err := parseWhitespaceInts(lines, jxsWordCount, "JXS")
	if err != nil {
		return nil, err
	}
	j := &JXS{}
	copy(j.raw[:], words)
	return j, nil
}

// jxsRegionSize is the fixed byte width of the binary JXS region (§4.4):
// 32 x int64.
const jxsRegionSize = jxsWordCount * 8

// DecodeBinaryJXS decodes the 256-byte JXS region of a PACE file.
func DecodeBinaryJXS(b []byte) (*JXS, error) {
	if len(b) != jxsRegionSize {
		return nil, paceerr.FormatHeader("binary JXS region has the wrong size", nil)
	}
	j := &JXS{}
	for i := range j.raw {
		j.raw[i] = binary.NativeEndian.Uint64(b[i*8 : i*8+8])
	}
	return j, nil
}

// EncodeBinary writes the JXS array into its fixed 256-byte layout.
func (j *JXS) EncodeBinary() []byte {
	out := make([]byte, jxsRegionSize)
	for i, v := range j.raw {
		binary.NativeEndian.PutUint64(out[i*8:i*8+8], v)
	}
	return out
}
