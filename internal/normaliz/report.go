package normaliz

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bft-labs/normbridge/internal/domain"
)

// HilbertBasisLabel introduces the section of a Normaliz report that lists
// the Hilbert basis of the recession monoid, one element per row.
const HilbertBasisLabel = "Hilbert basis elements of recession monoid:"

// maxLineBytes bounds a single report line.
const maxLineBytes = 4 << 20

// scanState tracks where the report scanner is relative to the basis section.
type scanState int

const (
	stateSearching scanState = iota
	stateCollecting
	stateDone
)

// String returns a human-readable representation of the state.
func (s scanState) String() string {
	switch s {
	case stateSearching:
		return "Searching"
	case stateCollecting:
		return "Collecting"
	case stateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// ReadReport opens the report at path and parses it with ParseReport.
func ReadReport(path string) (domain.BasisSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFileOpen, err)
	}
	defer f.Close()

	basis, err := ParseReport(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return basis, nil
}

// ParseReport extracts the Hilbert basis from a Normaliz report.
//
// Rows after HilbertBasisLabel are read until an empty line or a line with
// anything other than digits, spaces and tabs. Rows ending in the
// homogenizing 0 contribute the remaining coordinates; other rows are
// skipped. A report without the label yields an empty set.
func ParseReport(r io.Reader) (domain.BasisSet, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	basis := domain.BasisSet{}
	state := stateSearching
	for state != stateDone && sc.Scan() {
		line := sc.Text()

		switch state {
		case stateSearching:
			if strings.Contains(line, HilbertBasisLabel) {
				state = stateCollecting
			}
		case stateCollecting:
			if line == "" || !isRow(line) {
				state = stateDone
				continue
			}
			vec, err := parseRow(line)
			if err != nil {
				return nil, err
			}
			if len(vec) == 0 || vec[len(vec)-1] != 0 {
				continue
			}
			basis = append(basis, vec[:len(vec)-1])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFileOpen, err)
	}
	return basis, nil
}

func isRow(line string) bool {
	return strings.IndexFunc(line, func(c rune) bool {
		return c != ' ' && c != '\t' && (c < '0' || c > '9')
	}) < 0
}

func parseRow(line string) (domain.Vector, error) {
	fields := strings.Fields(line)
	vec := make(domain.Vector, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: report value %q", domain.ErrInvalidToken, f)
		}
		vec = append(vec, v)
	}
	return vec, nil
}
