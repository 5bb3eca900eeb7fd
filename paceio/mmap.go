package paceio

import (
	"unsafe"

	"golang.org/x/exp/mmap"

	"github.com/latticeforge/pace/header"
	"github.com/latticeforge/pace/paceerr"
)

// Binary region offsets and sizes, per spec.md §4.4.
const (
	headerOffset = 0
	headerSize   = 48
	izawOffset   = headerOffset + headerSize
	izawSize     = 256
	nxsOffset    = izawOffset + izawSize
	nxsSize      = 128
	jxsOffset    = nxsOffset + nxsSize
	jxsSize      = 256
	xxsOffset    = jxsOffset + jxsSize
)

// Mapped is a read-only view over one PACE file. golang.org/x/exp/mmap only
// exposes ReadAt/At, not a direct []byte over the mapping the way
// memmap2::Mmap derefs in the upstream writer, so each region is read once
// into an owned buffer and the XXS region is reinterpreted in place via
// unsafe.Slice; that one copy per region, XXS included, is the honest cost
// of this package's narrower API, not a design choice.
type Mapped struct {
	r *mmap.ReaderAt

	Header *header.Header
	IZAW   header.IZAW
	NXS    *header.NXS
	JXS    *header.JXS
	XXS    []float64
}

// Map opens path as a PACE binary file and decodes its fixed regions plus a
// []float64 view of XXS, reinterpreted without conversion from one owned
// copy of the XXS bytes.
func Map(path string) (*Mapped, error) {
	r, err := mmap.Open(path)
	if err != nil {
		return nil, paceerr.IO(path, err)
	}

	m := &Mapped{r: r}

	headerBuf := make([]byte, headerSize)
	if _, err := r.ReadAt(headerBuf, headerOffset); err != nil {
		r.Close()
		return nil, paceerr.IO(path, err)
	}
	h, err := header.DecodeBinary(headerBuf)
	if err != nil {
		r.Close()
		return nil, err
	}
	m.Header = h

	izawBuf := make([]byte, izawSize)
	if _, err := r.ReadAt(izawBuf, izawOffset); err != nil {
		r.Close()
		return nil, paceerr.IO(path, err)
	}
	izaw, err := header.DecodeBinaryIZAW(izawBuf)
	if err != nil {
		r.Close()
		return nil, err
	}
	m.IZAW = izaw

	nxsBuf := make([]byte, nxsSize)
	if _, err := r.ReadAt(nxsBuf, nxsOffset); err != nil {
		r.Close()
		return nil, paceerr.IO(path, err)
	}
	nxs, err := header.DecodeBinaryNXS(nxsBuf)
	if err != nil {
		r.Close()
		return nil, err
	}
	m.NXS = nxs

	jxsBuf := make([]byte, jxsSize)
	if _, err := r.ReadAt(jxsBuf, jxsOffset); err != nil {
		r.Close()
		return nil, paceerr.IO(path, err)
	}
	jxs, err := header.DecodeBinaryJXS(jxsBuf)
	if err != nil {
		r.Close()
		return nil, err
	}
	m.JXS = jxs

	xxsLen := r.Len() - xxsOffset
	if xxsLen < 0 {
		r.Close()
		return nil, paceerr.FormatHeader("PACE file shorter than its own fixed regions", nil)
	}
	xxsBuf := make([]byte, xxsLen)
	if xxsLen > 0 {
		if _, err := r.ReadAt(xxsBuf, xxsOffset); err != nil {
			r.Close()
			return nil, paceerr.IO(path, err)
		}
	}
	m.XXS = bytesToFloat64(xxsBuf)

	return m, nil
}

// Close releases the underlying mapping.
func (m *Mapped) Close() error {
	return m.r.Close()
}

// bytesToFloat64 reinterprets a byte buffer as a []float64 in place,
// assuming host-native endianness and 8-byte alignment; b is never resized
// after this call, so the backing array stays valid for the slice's life.
func bytesToFloat64(b []byte) []float64 {
	if len(b) == 0 {
		return nil
	}
	n := len(b) / 8
	return unsafe.Slice((*float64)(unsafe.Pointer(&b[0])), n)
}
