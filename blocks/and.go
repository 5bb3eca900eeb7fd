package blocks

import (
	"github.com/latticeforge/pace/angular"
	"github.com/latticeforge/pace/header"
	"github.com/latticeforge/pace/interp"
	"github.com/latticeforge/pace/paceerr"
)

// elasticMT is the ENDF reaction code for elastic scattering, always
// present and always the first LAND entry.
const elasticMT = 2

// ANDEntry is one reaction's decoded angular distribution. Isotropic is
// set when the LAND locator was 0 (isotropic regardless of energy);
// otherwise Distribution carries the energy-dependent table.
type ANDEntry struct {
	Isotropic    bool
	Distribution *angular.EnergyDependent
}

// AND maps each MT with a supplied angular distribution (LAND.Entries != -1)
// to its decoded sub-record.
type AND struct {
	ByMT map[int]ANDEntry
}

// processAND decodes the AND block for every reaction LAND supplies a
// distribution for. AND is the last block in resolution order, so its
// sub-records are read directly off the XXS tail rather than through a
// precomputed, truncated slice.
func processAND(a *Arrays, mtr *MTR, tyr *TYR, land *LAND) (*AND, error) {
	start, ok := blockStart(a.JXS.Get(header.AND))
	if !ok {
		return &AND{ByMT: map[int]ANDEntry{}}, nil
	}
	tail := a.XXS[start-1:]

	mts := append([]int{elasticMT}, releasingMTsOrdered(mtr, tyr)...)
	result := &AND{ByMT: make(map[int]ANDEntry)}
	for i, mt := range mts {
		if i >= len(land.Entries) {
			break
		}
		locator := land.Entries[i]
		if locator == landNotSupplied {
			continue
		}
		if locator == landIsotropic {
			result.ByMT[mt] = ANDEntry{Isotropic: true}
			continue
		}
		entry, err := decodeANDSubRecord(tail, int(locator))
		if err != nil {
			return nil, err
		}
		result.ByMT[mt] = entry
	}
	return result, nil
}

func decodeANDSubRecord(tail []float64, offset1 int) (ANDEntry, error) {
	idx := offset1 - 1
	if idx < 0 || idx >= len(tail) {
		return ANDEntry{}, paceerr.OutOfRange("AND sub-record offset", float64(idx))
	}
	data := tail[idx:]
	if len(data) < 1 {
		return ANDEntry{}, paceerr.GrammarViolation("AND", "sub-record is empty")
	}
	nE := int(bits(data[0]))
	if 1+2*nE > len(data) {
		return ANDEntry{}, paceerr.GrammarViolation("AND", "sub-record header truncated")
	}
	energies := data[1 : 1+nE]
	locators := data[1+nE : 1+2*nE]

	distributions := make([]angular.Distribution, nE)
	for i, locWord := range locators {
		loc := int(int64(bits(locWord)))
		switch {
		case loc == 0:
			distributions[i] = angular.Isotropic{}
		case loc < 0:
			dist, err := decodeTabulated(data, -loc)
			if err != nil {
				return ANDEntry{}, err
			}
			distributions[i] = dist
		default:
			dist, err := decodeEquiprobable(data, loc)
			if err != nil {
				return ANDEntry{}, err
			}
			distributions[i] = dist
		}
	}

	ed, err := angular.NewEnergyDependent(append([]float64(nil), energies...), distributions)
	if err != nil {
		return ANDEntry{}, err
	}
	return ANDEntry{Distribution: &ed}, nil
}

func decodeTabulated(data []float64, offset1 int) (angular.Distribution, error) {
	idx := offset1 - 1
	if idx < 0 || idx+1 >= len(data) {
		return nil, paceerr.OutOfRange("AND tabulated offset", float64(idx))
	}
	record := data[idx:]
	scheme, ok := interp.SchemeFromWord(bits(record[0]))
	if !ok {
		return nil, paceerr.GrammarViolation("AND", "unknown tabulated scheme")
	}
	nPts := int(bits(record[1]))
	if 2+3*nPts > len(record) {
		return nil, paceerr.GrammarViolation("AND", "tabulated record truncated")
	}
	cosTheta := record[2 : 2+nPts]
	cdf := record[2+2*nPts : 2+3*nPts]
	return angular.NewTabulated(scheme, append([]float64(nil), cosTheta...), append([]float64(nil), cdf...))
}

func decodeEquiprobable(data []float64, offset1 int) (angular.Distribution, error) {
	idx := offset1 - 1
	const bins = 33
	if idx < 0 || idx+bins > len(data) {
		return nil, paceerr.OutOfRange("AND equiprobable offset", float64(idx))
	}
	return angular.NewEquiprobableBins(append([]float64(nil), data[idx:idx+bins]...))
}
