// Package pacetest holds the ACE fixture shared across this module's test
// suites, parsed once per test binary rather than once per test case.
package pacetest

import (
	"bufio"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/latticeforge/pace/blocks"
	"github.com/latticeforge/pace/header"
	"github.com/latticeforge/pace/isotope"
	"github.com/latticeforge/pace/paceerr"
)

// ACEText is the constructed legacy-header ACE file used throughout
// spec.md §8's scenarios: a single isotope with a 3-point energy grid and
// one reaction (MT 18) whose SIG sub-record exercises the trailing-block
// truncation rule.
const ACEText = " 1001.00c    0.999167   2.5301E-08   01/01/18\n" +
	"fixture comment\n" +
	"      0         0.      0         0.      0         0.      0         0.\n" +
	"      0         0.      0         0.      0         0.      0         0.\n" +
	"      0         0.      0         0.      0         0.      0         0.\n" +
	"      0         0.      0         0.      0         0.      0         0.\n" +
	"      23    1001       3       1       0       0       0       0\n" +
	"       0       0       0       0       0       0       0       0\n" +
	"    1    0   16   17    0   18   19    0\n" +
	"    0    0    0    0    0    0    0    0\n" +
	"    0    0    0    0    0    0    0    0\n" +
	"    0    0    0    0    0    0    0   23\n" +
	"                 1.0                 2.0                 3.0               100.0\n" +
	"               150.0               200.0                 0.1                0.15\n" +
	"                 0.2                 5.0                 6.0                 7.0\n" +
	"                 2.0                 4.0                 6.0                  18\n" +
	"                41.0                   1                   1                   3\n" +
	"                17.0                38.0               100.0\n"

var (
	once      sync.Once
	parsedISO *isotope.Isotope
	parseErr  error
)

// ParsedISO returns the fixture ACE text parsed into an Isotope, parsing it
// only on the first call.
func ParsedISO() (*isotope.Isotope, error) {
	once.Do(func() {
		r := bufio.NewReader(strings.NewReader(ACEText))
		h, err := header.ParseASCII(r)
		if err != nil {
			parseErr = err
			return
		}
		if _, err := header.ParseASCIIIZAW(r); err != nil {
			parseErr = err
			return
		}
		nxs, err := header.ParseASCIINXS(r)
		if err != nil {
			parseErr = err
			return
		}
		jxs, err := header.ParseASCIIJXS(r)
		if err != nil {
			parseErr = err
			return
		}
		xxs, err := parseXXSText(r)
		if err != nil {
			parseErr = err
			return
		}

		resolved, err := blocks.Resolve(&blocks.Arrays{NXS: nxs, JXS: jxs, XXS: xxs})
		if err != nil {
			parseErr = err
			return
		}
		parsedISO, parseErr = isotope.Build(h, nxs, resolved)
	})
	return parsedISO, parseErr
}

// parseXXSText decodes the remaining fixed-width XXS lines directly,
// mirroring the ACE grammar's int-then-float token ambiguity without going
// through the full PACE writer (this fixture is consumed as ASCII text
// directly by package tests, not converted to a binary cache first).
func parseXXSText(r *bufio.Reader) ([]float64, error) {
	var words []float64
	for {
		line, err := r.ReadString('\n')
		trimmed := strings.TrimRight(line, "\r\n")
		for _, tok := range strings.Fields(trimmed) {
			w, tokErr := parseXXSToken(tok)
			if tokErr != nil {
				return nil, tokErr
			}
			words = append(words, w)
		}
		if err != nil {
			break
		}
	}
	return words, nil
}

func parseXXSToken(tok string) (float64, error) {
	if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return math.Float64frombits(uint64(i)), nil
	}
	if v, err := strconv.ParseFloat(tok, 64); err == nil {
		return v, nil
	}
	return 0, paceerr.FormatToken(tok)
}
