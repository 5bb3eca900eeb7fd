package blocks

import "github.com/latticeforge/pace/header"

// MTR lists the ENDF reaction (MT) numbers for every reaction besides
// elastic scattering, in the order SIG, LQR, and TYR index against.
type MTR struct {
	MT []int
}

// processMTR decodes the MTR block: ntr MT numbers. Absent entirely when
// the isotope has no reactions beyond elastic scattering.
func processMTR(a *Arrays) (*MTR, error) {
	start, ok := blockStart(a.JXS.Get(header.MTR))
	if !ok {
		return &MTR{}, nil
	}
	ntr := int(a.NXS.Ntr)
	data, err := sliceBlock(a.XXS, start, ntr)
	if err != nil {
		return nil, err
	}
	mt := make([]int, ntr)
	for i, w := range data {
		mt[i] = int(int64(bits(w)))
	}
	return &MTR{MT: mt}, nil
}
