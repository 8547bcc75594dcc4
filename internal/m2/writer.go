// Package m2 writes Hilbert basis sets as Macaulay2 list literals.
package m2

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/bft-labs/normbridge/internal/domain"
)

// FormatBasis renders basis as {{a, b}, {c, d}} followed by a newline.
// An empty basis renders as {}.
func FormatBasis(basis domain.BasisSet) string {
	inner := lo.Map(basis, func(v domain.Vector, _ int) string { return formatVector(v) })
	return "{" + strings.Join(inner, ", ") + "}\n"
}

func formatVector(v domain.Vector) string {
	coords := lo.Map(v, func(x int, _ int) string { return strconv.Itoa(x) })
	return "{" + strings.Join(coords, ", ") + "}"
}

// WriteFile writes FormatBasis(basis) to path, replacing any existing file.
func WriteFile(path string, basis domain.BasisSet) error {
	if err := os.WriteFile(path, []byte(FormatBasis(basis)), 0o644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
