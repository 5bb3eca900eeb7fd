// Package pace parses ACE-format continuous-energy neutron cross-section
// libraries, caching the expensive ASCII parse as a fast-mmap PACE binary.
package pace

import (
	"bufio"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lunny/log"
	"lukechampine.com/blake3"

	"github.com/latticeforge/pace/blocks"
	"github.com/latticeforge/pace/header"
	"github.com/latticeforge/pace/isotope"
	"github.com/latticeforge/pace/paceio"
)

// Load parses path (an ACE ASCII file or an already-converted PACE binary
// cache) into a fully-populated Isotope. ASCII input is converted to a
// PACE file next to it first; a detected-stale cache (fingerprint
// mismatch, when opts.VerifyCacheFingerprint is set) is reconverted.
func Load(path string, opts *Options) (*isotope.Isotope, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	pacePath := path
	ascii, err := isASCII(path, opts.AsciiSniffBytes)
	if err != nil {
		return nil, err
	}
	if ascii {
		start := time.Now()
		converted, err := convertWithFingerprint(path, opts)
		if err != nil {
			return nil, err
		}
		pacePath = converted
		log.Printf("pace: converted %s to %s in %v", path, pacePath, time.Since(start))
	}

	start := time.Now()
	mapped, err := paceio.Map(pacePath)
	if err != nil {
		return nil, err
	}
	defer mapped.Close()
	log.Printf("pace: mapped %s in %v", pacePath, time.Since(start))

	start = time.Now()
	resolved, err := blocks.Resolve(&blocks.Arrays{NXS: mapped.NXS, JXS: mapped.JXS, XXS: mapped.XXS})
	if err != nil {
		return nil, err
	}
	log.Printf("pace: resolved blocks for %s in %v", pacePath, time.Since(start))

	return isotope.Build(mapped.Header, mapped.NXS, resolved)
}

// isASCII sniffs up to n bytes of path, per spec.md §6: all bytes must be
// printable ASCII or one of {9 (tab), 10 (LF), 13 (CR)}.
func isASCII(path string, n int) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, IOError(path, err)
	}
	defer f.Close()

	buf := make([]byte, n)
	read, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false, IOError(path, err)
	}
	for _, b := range buf[:read] {
		if b == 9 || b == 10 || b == 13 {
			continue
		}
		if b < 32 || b > 126 {
			return false, nil
		}
	}
	return true, nil
}

// fingerprintSuffix is appended to the PACE output path to name the
// sibling file holding the source ACE file's fingerprint (spec.md's PACE-file-naming subsection,
// supplemented with a cache-invalidation fingerprint per SPEC_FULL.md).
const fingerprintSuffix = ".pace.sum"

// convertWithFingerprint converts an ACE ASCII file to PACE, skipping the
// (expensive) reconversion when a sibling fingerprint file already matches
// the source's BLAKE3-256 digest.
func convertWithFingerprint(acePath string, opts *Options) (string, error) {
	digest, err := fingerprintFile(acePath)
	if err != nil {
		return "", err
	}

	f, err := os.Open(acePath)
	if err != nil {
		return "", IOError(acePath, err)
	}
	h, err := header.ParseASCII(bufio.NewReader(f))
	f.Close()
	if err != nil {
		return "", err
	}
	outputName := h.Zaid
	if h.Szaid != "" {
		outputName = h.Szaid
	}
	pacePath := filepath.Join(filepath.Dir(acePath), outputName+".pace")
	sumPath := pacePath + fingerprintSuffix

	if opts.VerifyCacheFingerprint {
		if existing, err := os.ReadFile(sumPath); err == nil {
			if strings.TrimSpace(string(existing)) == digest {
				if _, statErr := os.Stat(pacePath); statErr == nil {
					return pacePath, nil
				}
			}
		}
	}

	outPath, err := paceio.Convert(acePath, opts.WriterChunkLines, opts.WriterParallelism)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(sumPath, []byte(digest), 0o644); err != nil {
		return "", IOError(sumPath, err)
	}
	return outPath, nil
}

func fingerprintFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", IOError(path, err)
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
