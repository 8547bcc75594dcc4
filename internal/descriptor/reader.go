// Package descriptor reads the {{i1,...,ik},n} line that a Macaulay2
// session leaves for the bridge.
package descriptor

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/bft-labs/normbridge/internal/domain"
	"github.com/bft-labs/normbridge/internal/ports"
	"github.com/bft-labs/normbridge/pkg/log"
)

// Reader parses descriptor files. The zero value is not usable; use New.
type Reader struct {
	logger     ports.Logger
	keepSource bool
}

// Option configures a Reader.
type Option func(*Reader)

// WithKeepSource leaves the descriptor file in place after a successful
// read instead of consuming it.
func WithKeepSource(keep bool) Option {
	return func(r *Reader) {
		r.keepSource = keep
	}
}

// New creates a Reader that reports skipped tokens to logger.
func New(logger ports.Logger, opts ...Option) *Reader {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	r := &Reader{logger: logger}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read parses the first line of path and, on success, removes the file.
func (r *Reader) Read(path string) (domain.Descriptor, error) {
	line, err := firstLine(path)
	if err != nil {
		return domain.Descriptor{}, err
	}

	d, err := r.Parse(line)
	if err != nil {
		return domain.Descriptor{}, err
	}

	if !r.keepSource {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("descriptor: could not remove source", log.String("path", path), log.Err(err))
		}
	}
	return d, nil
}

// Parse extracts a Descriptor from one line. Text before the first '{' is
// ignored; the inner list ends at the first '}' after its opening brace and
// the scalar is the integer leading the text after the next ','. Anything
// after that integer is ignored.
func (r *Reader) Parse(line string) (domain.Descriptor, error) {
	line = strings.TrimSpace(line)

	outer := strings.IndexByte(line, '{')
	if outer < 0 {
		return domain.Descriptor{}, fmt.Errorf("%w: no opening brace", domain.ErrMalformedDescriptor)
	}
	innerOpen := indexFrom(line, '{', outer+1)
	if innerOpen < 0 {
		return domain.Descriptor{}, fmt.Errorf("%w: no inner list", domain.ErrMalformedDescriptor)
	}
	innerClose := indexFrom(line, '}', innerOpen)
	if innerClose < 0 {
		return domain.Descriptor{}, fmt.Errorf("%w: inner list is not closed", domain.ErrMalformedDescriptor)
	}

	seq, err := r.parseList(line[innerOpen+1 : innerClose])
	if err != nil {
		return domain.Descriptor{}, err
	}
	if len(seq) == 0 {
		return domain.Descriptor{}, fmt.Errorf("%w: inner list has no integers", domain.ErrMalformedDescriptor)
	}

	comma := indexFrom(line, ',', innerClose)
	if comma < 0 {
		return domain.Descriptor{}, fmt.Errorf("%w: missing comma before bound", domain.ErrMalformedDescriptor)
	}
	rest := line[comma+1:]
	if cleanToken(rest) == "" {
		return domain.Descriptor{}, fmt.Errorf("%w: missing bound", domain.ErrMalformedDescriptor)
	}
	scalar := leadingInt(strings.TrimSpace(rest))
	n, err := strconv.Atoi(scalar)
	if err != nil {
		return domain.Descriptor{}, fmt.Errorf("%w: bound %q", domain.ErrInvalidToken, strings.TrimSpace(rest))
	}

	return domain.Descriptor{Sequence: seq, Bound: domain.ScalarBound(n)}, nil
}

func (r *Reader) parseList(body string) (domain.IntegerSequence, error) {
	raw := strings.Split(body, ",")
	cleaned := lo.Map(raw, func(tok string, _ int) string { return cleanToken(tok) })

	seq := make(domain.IntegerSequence, 0, len(raw))
	for i, tok := range cleaned {
		if tok == "" {
			r.logger.Warn("descriptor: skipping empty token",
				log.String("token", raw[i]),
				log.Int("position", i),
				log.Err(domain.ErrEmptyToken),
			)
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: list element %d %q", domain.ErrInvalidToken, i, raw[i])
		}
		seq = append(seq, v)
	}
	return seq, nil
}

// cleanToken trims whitespace and drops trailing non-digit characters, so
// "5;" becomes "5" and ";" becomes "". Non-digits inside the token are kept:
// "2a3" stays "2a3" and fails conversion instead of being read as 2.
func cleanToken(tok string) string {
	return strings.TrimRightFunc(strings.TrimSpace(tok), func(c rune) bool {
		return c < '0' || c > '9'
	})
}

// leadingInt returns the optional sign and digit run at the start of s, or
// "" when s does not start with an integer.
func leadingInt(s string) string {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return ""
	}
	return s[:i]
}

func indexFrom(s string, c byte, from int) int {
	if from >= len(s) {
		return -1
	}
	i := strings.IndexByte(s[from:], c)
	if i < 0 {
		return -1
	}
	return from + i
}

func firstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrFileOpen, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("%w: read %s: %w", domain.ErrFileOpen, path, err)
		}
		return "", fmt.Errorf("%w: %s is empty", domain.ErrMalformedDescriptor, path)
	}
	return sc.Text(), nil
}
