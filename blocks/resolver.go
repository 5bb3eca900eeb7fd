package blocks

import "github.com/latticeforge/pace/header"

// Blocks holds every decoded block from one ACE/PACE file, resolved in the
// fixed topological order spec.md §4.3 requires: later blocks may consult
// earlier ones by direct reference.
type Blocks struct {
	ESZ  *ESZ
	MTR  *MTR
	LQR  *LQR
	LSIG *LSIG
	SIG  *SIG
	TYR  *TYR
	NU   *NU
	DNU  *DNU
	BDD  *BDD
	LAND *LAND
	AND  *AND
}

// Resolve decodes every block present in arrays, in the order
// ESZ -> MTR -> LQR -> LSIG -> SIG -> TYR -> NU -> DNU -> BDD -> LAND -> AND.
// A block whose JXS slot is zero decodes to nil (NU, DNU, BDD) or to an
// empty value (the others); this is not an error except for ESZ, which
// every ACE file carries.
func Resolve(a *Arrays) (*Blocks, error) {
	esz, err := processESZ(a)
	if err != nil {
		return nil, err
	}
	mtr, err := processMTR(a)
	if err != nil {
		return nil, err
	}
	lqr, err := processLQR(a)
	if err != nil {
		return nil, err
	}
	lsig, err := processLSIG(a)
	if err != nil {
		return nil, err
	}
	sig, err := processSIG(a, mtr, lsig, esz)
	if err != nil {
		return nil, err
	}
	tyr, err := processTYR(a)
	if err != nil {
		return nil, err
	}

	dnuPresent := a.JXS.Get(header.DNU) != 0
	nu, err := processNU(a, dnuPresent)
	if err != nil {
		return nil, err
	}
	dnu, err := processDNU(a)
	if err != nil {
		return nil, err
	}
	bdd, err := processBDD(a)
	if err != nil {
		return nil, err
	}

	land, err := processLAND(a)
	if err != nil {
		return nil, err
	}
	and, err := processAND(a, mtr, tyr, land)
	if err != nil {
		return nil, err
	}

	return &Blocks{
		ESZ: esz, MTR: mtr, LQR: lqr, LSIG: lsig, SIG: sig, TYR: tyr,
		NU: nu, DNU: dnu, BDD: bdd, LAND: land, AND: and,
	}, nil
}
