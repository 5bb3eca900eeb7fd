package blocks

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/latticeforge/pace/header"
	"github.com/latticeforge/pace/paceerr"
)

// SIGEntry is one reaction's cross section, on the subrange of ESZ.Energy
// it applies over.
type SIGEntry struct {
	Energy []float64
	XS     []float64
}

// SIG maps each MT in MTR to its decoded cross-section sub-record.
type SIG struct {
	ByMT map[int]SIGEntry
}

// sigBlockLength replicates the upstream length formula exactly, off-by-one
// included: the accumulator starts at 1 rather than 0, so a SIG block that
// runs to the end of XXS computes one word longer than its true size. That
// is what the "block end == len(xxs)+1 -> truncate" rule in sliceBlock
// exists to absorb.
func sigBlockLength(a *Arrays, sigStart int, lsig *LSIG) (int, error) {
	length := 1
	for _, offset := range lsig.Offset {
		idx := sigStart - 1 + offset
		if idx < 0 || idx >= len(a.XXS) {
			return 0, paceerr.OutOfRange("SIG locator", float64(idx))
		}
		numXS := int(bits(a.XXS[idx]))
		length += numXS + 2
	}
	return length, nil
}

// processSIG decodes the SIG block. Each reaction's sub-record is
// independent of the others, so the per-reaction decode runs concurrently;
// results land in a shared map behind a single lock (spec.md §5).
func processSIG(a *Arrays, mtr *MTR, lsig *LSIG, esz *ESZ) (*SIG, error) {
	start, ok := blockStart(a.JXS.Get(header.SIG))
	if !ok {
		return &SIG{ByMT: map[int]SIGEntry{}}, nil
	}
	length, err := sigBlockLength(a, start, lsig)
	if err != nil {
		return nil, err
	}
	data, err := sliceBlock(a.XXS, start, length)
	if err != nil {
		return nil, err
	}

	result := &SIG{ByMT: make(map[int]SIGEntry, len(mtr.MT))}
	var mu sync.Mutex
	var g errgroup.Group
	for i := range mtr.MT {
		i := i
		g.Go(func() error {
			mt := mtr.MT[i]
			startPos := lsig.Offset[i]
			if startPos-1 < 0 || startPos >= len(data) {
				return paceerr.OutOfRange("SIG sub-record start", float64(startPos))
			}
			energyStartIndex := int(bits(data[startPos-1]))
			numXS := int(bits(data[startPos]))
			if startPos+1+numXS > len(data) {
				return paceerr.GrammarViolation("SIG", "reaction sub-record runs past the block")
			}
			if energyStartIndex-1 < 0 || energyStartIndex-1+numXS > len(esz.Energy) {
				return paceerr.GrammarViolation("SIG", "reaction energy range runs past ESZ")
			}
			entry := SIGEntry{
				Energy: append([]float64(nil), esz.Energy[energyStartIndex-1:energyStartIndex-1+numXS]...),
				XS:     append([]float64(nil), data[startPos+1:startPos+1+numXS]...),
			}
			mu.Lock()
			result.ByMT[mt] = entry
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
