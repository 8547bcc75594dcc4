package normaliz

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/bft-labs/normbridge/internal/domain"
)

// FormatInput renders d as a Normaliz input with one inhomogeneous
// congruence: the sequence, a zero right-hand side, then the modulus.
// Values are not validated.
func FormatInput(d domain.Descriptor) string {
	var b strings.Builder
	fmt.Fprintf(&b, "amb_space %d\n", d.Sequence.Len())
	b.WriteString("inhom_congruences 1\n")

	row := lo.Map(d.Sequence, func(v int, _ int) string { return strconv.Itoa(v) })
	row = append(row, "0", strconv.Itoa(int(d.Bound)))
	b.WriteString(strings.Join(row, " "))
	b.WriteByte('\n')
	return b.String()
}

// WriteInput writes FormatInput(d) to path, replacing any existing file.
func WriteInput(path string, d domain.Descriptor) error {
	if err := os.WriteFile(path, []byte(FormatInput(d)), 0o644); err != nil {
		return fmt.Errorf("write solver input: %w", err)
	}
	return nil
}
