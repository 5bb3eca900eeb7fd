package pace

import "github.com/latticeforge/pace/paceerr"

// Error is the single error type surfaced by every exported operation in
// this module. It is an alias of paceerr.Error so that internal packages
// (header, blocks, interp, angular, paceio, isotope) can construct it
// without importing this root package.
type Error = paceerr.Error

// Kind discriminates the taxonomy of errors a load can fail with. See
// spec.md §7 for the full taxonomy.
type Kind = paceerr.Kind

const (
	KindIO               = paceerr.KindIO
	KindFormatHeader     = paceerr.KindFormatHeader
	KindFormatToken      = paceerr.KindFormatToken
	KindGrammarViolation = paceerr.KindGrammarViolation
	KindUnsupported      = paceerr.KindUnsupported
	KindOutOfRange       = paceerr.KindOutOfRange
)

// IOError wraps a failure opening, reading, or writing either an ACE or
// PACE file.
func IOError(subject string, cause error) *Error { return paceerr.IO(subject, cause) }

// FormatHeaderError reports a malformed ACE header.
func FormatHeaderError(detail string, cause error) *Error { return paceerr.FormatHeader(detail, cause) }

// FormatTokenError reports an XXS token that is neither a valid integer
// nor a valid float during ACE->PACE conversion.
func FormatTokenError(token string) *Error { return paceerr.FormatToken(token) }

// GrammarViolationError reports a block whose presence or internal
// structure contradicts its grammar.
func GrammarViolationError(block, detail string) *Error {
	return paceerr.GrammarViolation(block, detail)
}

// UnsupportedError reports a feature this module intentionally does not
// implement (Gamow interpolation, photon/probability-table blocks, ...).
func UnsupportedError(feature string) *Error { return paceerr.Unsupported(feature) }

// OutOfRangeError reports a value (an interpolation x, a sampling energy,
// ...) outside the domain it is evaluated against.
func OutOfRangeError(kind string, value float64) *Error { return paceerr.OutOfRange(kind, value) }
