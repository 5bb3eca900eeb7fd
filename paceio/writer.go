// Package paceio converts ACE ASCII files into the PACE binary cache and
// exposes zero-copy typed views over the resulting file via mmap.
package paceio

import (
	"bufio"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/latticeforge/pace/header"
	"github.com/latticeforge/pace/paceerr"
)

// defaultChunkLines mirrors the upstream writer's BATCH_SIZE: the number of
// XXS text lines handed to one worker before results are reassembled in
// order.
const defaultChunkLines = 1000

// tokenFieldWidth is the fixed 20-character field every XXS token occupies
// on an 80-column line (spec.md §6).
const tokenFieldWidth = 20

// Convert reads the ACE ASCII file at inputPath and writes its PACE binary
// equivalent next to it, named `<szaid-or-zaid>.pace`. It returns the
// output path. chunkLines and parallelism of 0 fall back to their defaults
// (options.DefaultOptions's values).
func Convert(inputPath string, chunkLines, parallelism int) (string, error) {
	if chunkLines <= 0 {
		chunkLines = defaultChunkLines
	}

	f, err := os.Open(inputPath)
	if err != nil {
		return "", paceerr.IO(inputPath, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	h, err := header.ParseASCII(r)
	if err != nil {
		return "", err
	}
	izaw, err := header.ParseASCIIIZAW(r)
	if err != nil {
		return "", err
	}
	nxs, err := header.ParseASCIINXS(r)
	if err != nil {
		return "", err
	}
	jxs, err := header.ParseASCIIJXS(r)
	if err != nil {
		return "", err
	}

	outputName := h.Zaid
	if h.Szaid != "" {
		outputName = h.Szaid
	}
	outputPath := filepath.Join(filepath.Dir(inputPath), outputName+".pace")

	xxs, err := convertXXS(r, chunkLines, parallelism)
	if err != nil {
		return "", err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return "", paceerr.IO(outputPath, err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	if _, err := w.Write(h.EncodeBinary()); err != nil {
		return "", paceerr.IO(outputPath, err)
	}
	izawBytes := izaw.EncodeBinary()
	if _, err := w.Write(izawBytes); err != nil {
		return "", paceerr.IO(outputPath, err)
	}
	if _, err := w.Write(nxs.EncodeBinary()); err != nil {
		return "", paceerr.IO(outputPath, err)
	}
	if _, err := w.Write(jxs.EncodeBinary()); err != nil {
		return "", paceerr.IO(outputPath, err)
	}
	for _, word := range xxs {
		var buf [8]byte
		binary.NativeEndian.PutUint64(buf[:], math.Float64bits(word))
		if _, err := w.Write(buf[:]); err != nil {
			return "", paceerr.IO(outputPath, err)
		}
	}
	if err := w.Flush(); err != nil {
		return "", paceerr.IO(outputPath, err)
	}

	return outputPath, nil
}

// parseToken tries an int64 parse first, then a float64 parse, matching the
// upstream writer exactly: XXS packs counts and locators as integer bit
// patterns and physics quantities as floats in the very same word stream.
func parseToken(token string) (float64, error) {
	if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return math.Float64frombits(uint64(i)), nil
	}
	if v, err := strconv.ParseFloat(token, 64); err == nil {
		return v, nil
	}
	return 0, paceerr.FormatToken(token)
}

// splitFixedWidth divides a line into tokenFieldWidth-character fields,
// trimming surrounding whitespace from each.
func splitFixedWidth(line string) []string {
	n := len(line) / tokenFieldWidth
	tokens := make([]string, 0, n)
	for i := 0; i < n; i++ {
		start := i * tokenFieldWidth
		tokens = append(tokens, strings.TrimSpace(line[start:start+tokenFieldWidth]))
	}
	return tokens
}

// convertXXS reads the remaining lines of the ACE file and decodes them in
// parallel chunks of chunkLines, restoring chunk order before returning the
// assembled word stream (spec.md §5: a work-stealing parallel pool over
// independent line chunks, completion order restored by index).
func convertXXS(r *bufio.Reader, chunkLines, parallelism int) ([]float64, error) {
	var lines []string
	for {
		line, err := r.ReadString('\n')
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed != "" {
			lines = append(lines, trimmed)
		}
		if err != nil {
			break
		}
	}

	var chunks [][]string
	for i := 0; i < len(lines); i += chunkLines {
		end := i + chunkLines
		if end > len(lines) {
			end = len(lines)
		}
		chunks = append(chunks, lines[i:end])
	}

	results := make([][]float64, len(chunks))
	g := new(errgroup.Group)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			var words []float64
			for _, line := range chunk {
				for _, tok := range splitFixedWidth(line) {
					if tok == "" {
						continue
					}
					w, err := parseToken(tok)
					if err != nil {
						return err
					}
					words = append(words, w)
				}
			}
			results[i] = words
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var xxs []float64
	for _, chunk := range results {
		xxs = append(xxs, chunk...)
	}
	return xxs, nil
}
