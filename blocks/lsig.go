package blocks

import "github.com/latticeforge/pace/header"

// LSIG lists, for each reaction in MTR, the 1-based offset within SIG
// where that reaction's cross-section sub-record starts.
type LSIG struct {
	Offset []int
}

// processLSIG decodes the LSIG block: ntr unsigned locators.
func processLSIG(a *Arrays) (*LSIG, error) {
	start, ok := blockStart(a.JXS.Get(header.LSIG))
	if !ok {
		return &LSIG{}, nil
	}
	ntr := int(a.NXS.Ntr)
	data, err := sliceBlock(a.XXS, start, ntr)
	if err != nil {
		return nil, err
	}
	offsets := make([]int, ntr)
	for i, w := range data {
		offsets[i] = int(bits(w))
	}
	return &LSIG{Offset: offsets}, nil
}
