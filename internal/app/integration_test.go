//go:build unix

package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bft-labs/normbridge/internal/adapters/process"
	"github.com/bft-labs/normbridge/internal/domain"
)

// fakeNormaliz mimics Normaliz: it reads <stem>.in from the working
// directory and writes <stem>.out plus a .gen side file.
const fakeNormaliz = `#!/bin/sh
in="$1"
stem="${in%.in}"
[ -f "$in" ] || exit 2
cat > "$stem.out" <<'REPORT'
2 Hilbert basis elements of recession monoid:
 1 0 0
 0 3 0

1 lattice points in polytope
REPORT
touch "$stem.gen"
`

func TestPipeline_WithSubprocessSolver(t *testing.T) {
	dir, cfg := setupRun(t, "{{1,3},3}")
	script := filepath.Join(t.TempDir(), "normaliz")
	if err := os.WriteFile(script, []byte(fakeNormaliz), 0o755); err != nil {
		t.Fatal(err)
	}

	solver := process.NewSolver(script, nil, nil)
	if _, err := NewPipeline(cfg, solver, nil).Run(context.Background()); err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if got := readFile(t, cfg.OutputPath); got != "{{1, 0}, {0, 3}}\n" {
		t.Errorf("output = %q", got)
	}
	assertNoArtifacts(t, dir)
}

func TestPipeline_WithFailingSubprocessSolver(t *testing.T) {
	dir, cfg := setupRun(t, "{{1,3},3}")
	script := filepath.Join(t.TempDir(), "normaliz")
	if err := os.WriteFile(script, []byte("#!/bin/sh\necho 'bad congruence' >&2\nexit 1\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := NewPipeline(cfg, process.NewSolver(script, nil, nil), nil).Run(context.Background())
	var se *domain.SolverError
	if !errors.As(err, &se) {
		t.Fatalf("Run error = %v, want *SolverError", err)
	}
	if se.ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", se.ExitCode)
	}
	assertNoArtifacts(t, dir)
}
