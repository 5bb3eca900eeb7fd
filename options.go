package pace

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Options carries the tunables the teacher's Rust prototype either
// hardcodes or threads through positional arguments. All fields have sane
// defaults from DefaultOptions; most callers never need to touch this.
type Options struct {
	// WriterChunkLines is the number of ACE text lines grouped into one
	// parallel conversion chunk when writing the PACE binary (§4.4, §5).
	WriterChunkLines int `yaml:"writer_chunk_lines"`
	// WriterParallelism bounds the number of chunks converted
	// concurrently. Zero or less sets no limit.
	WriterParallelism int `yaml:"writer_parallelism"`
	// AsciiSniffBytes is the number of leading bytes sampled to decide
	// whether an input file is ASCII ACE text or binary PACE (§6).
	AsciiSniffBytes int `yaml:"ascii_sniff_bytes"`
	// VerifyCacheFingerprint controls whether Load compares the stored
	// BLAKE3 digest of the source ACE file against a sibling ".pace.sum"
	// file before trusting an existing PACE cache.
	VerifyCacheFingerprint bool `yaml:"verify_cache_fingerprint"`
}

// DefaultOptions returns the tunables matching spec.md's literal values.
func DefaultOptions() *Options {
	return &Options{
		WriterChunkLines:       1000,
		WriterParallelism:      0,
		AsciiSniffBytes:        1024,
		VerifyCacheFingerprint: true,
	}
}

// LoadOptions reads Options from a YAML file, applying DefaultOptions for
// any field the file omits.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, IOError(path, err)
	}
	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, FormatHeaderError("invalid options file "+path, err)
	}
	return opts, nil
}
