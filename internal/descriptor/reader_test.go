package descriptor

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bft-labs/normbridge/internal/domain"
	"github.com/bft-labs/normbridge/pkg/log"
)

// recordingLogger keeps warn messages for assertions.
type recordingLogger struct {
	log.NoopLogger
	mu    sync.Mutex
	warns []map[string]interface{}
}

func (l *recordingLogger) Warn(msg string, fields ...log.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	entry := map[string]interface{}{"msg": msg}
	for _, f := range fields {
		entry[f.Key] = f.Value
	}
	l.warns = append(l.warns, entry)
}

func TestParse_WellFormed(t *testing.T) {
	tests := []struct {
		name string
		line string
		want domain.Descriptor
	}{
		{
			name: "plain",
			line: "{{1,2,3},5}",
			want: domain.Descriptor{Sequence: domain.IntegerSequence{1, 2, 3}, Bound: 5},
		},
		{
			name: "spaces and negatives",
			line: "  { { 4, -7 , 0 } , -11 }  ",
			want: domain.Descriptor{Sequence: domain.IntegerSequence{4, -7, 0}, Bound: -11},
		},
		{
			name: "ignored prefix",
			line: "o3 = {{2, 3}, 7}",
			want: domain.Descriptor{Sequence: domain.IntegerSequence{2, 3}, Bound: 7},
		},
		{
			name: "single element",
			line: "{{9},2}",
			want: domain.Descriptor{Sequence: domain.IntegerSequence{9}, Bound: 2},
		},
		{
			name: "trailing punctuation",
			line: "{{5;, 6}, 3};",
			want: domain.Descriptor{Sequence: domain.IntegerSequence{5, 6}, Bound: 3},
		},
		{
			name: "suffix ending in a digit",
			line: "{{1,2},3} -- run 2",
			want: domain.Descriptor{Sequence: domain.IntegerSequence{1, 2}, Bound: 3},
		},
		{
			name: "tab separated comment suffix",
			line: "{{1,2},3}\t# v1",
			want: domain.Descriptor{Sequence: domain.IntegerSequence{1, 2}, Bound: 3},
		},
		{
			name: "explicit plus sign on bound",
			line: "{{4},+6}",
			want: domain.Descriptor{Sequence: domain.IntegerSequence{4}, Bound: 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(nil).Parse(tt.line)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.line, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestParse_EmptyTokenSkippedWithWarning(t *testing.T) {
	logger := &recordingLogger{}
	got, err := New(logger).Parse("{{1, ;, 3},4}")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	want := domain.IntegerSequence{1, 3}
	if diff := cmp.Diff(want, got.Sequence); diff != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", diff)
	}
	if len(logger.warns) != 1 {
		t.Fatalf("warnings = %d, want 1", len(logger.warns))
	}
	if logger.warns[0]["token"] != " ;" {
		t.Errorf("warned token = %q, want %q", logger.warns[0]["token"], " ;")
	}
	if !errors.Is(logger.warns[0]["error"].(error), domain.ErrEmptyToken) {
		t.Errorf("warning error = %v, want ErrEmptyToken", logger.warns[0]["error"])
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
		want error
	}{
		{"no braces", "1,2,3,5", domain.ErrMalformedDescriptor},
		{"no inner list", "{1,2,3},5", domain.ErrMalformedDescriptor},
		{"inner list not closed", "{{1,2,3, 5", domain.ErrMalformedDescriptor},
		{"missing inner close brace", "{{1,2,3,5}", domain.ErrMalformedDescriptor},
		{"empty inner list", "{{},5}", domain.ErrMalformedDescriptor},
		{"only punctuation", "{{;,;},5}", domain.ErrMalformedDescriptor},
		{"missing bound", "{{1,2},}", domain.ErrMalformedDescriptor},
		{"invalid element", "{{1,x2,3},5}", domain.ErrInvalidToken},
		{"embedded letter", "{{1a2},5}", domain.ErrInvalidToken},
		{"invalid bound", "{{1,2},n5}", domain.ErrInvalidToken},
		{"sign without digits", "{{1,2},- 5}", domain.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(nil).Parse(tt.line)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.line, err, tt.want)
			}
		})
	}
}

func TestCleanToken(t *testing.T) {
	tests := map[string]string{
		"5;":    "5",
		" 12 ":  "12",
		";":     "",
		"":      "",
		"-3}}":  "-3",
		"7 )\t": "7",
		"2a3":   "2a3",
	}
	for in, want := range tests {
		if got := cleanToken(in); got != want {
			t.Errorf("cleanToken(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLeadingInt(t *testing.T) {
	tests := map[string]string{
		"3} -- run 2": "3",
		"-11 }":       "-11",
		"+6}":         "+6",
		"n5":          "",
		"-":           "",
		"":            "",
	}
	for in, want := range tests {
		if got := leadingInt(in); got != want {
			t.Errorf("leadingInt(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRead_ConsumesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte("{{7,8},3}\nsecond line ignored\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := New(nil).Read(path)
	if err != nil {
		t.Fatalf("Read error: %v", err)
	}
	want := domain.Descriptor{Sequence: domain.IntegerSequence{7, 8}, Bound: 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Read mismatch (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected %s to be removed, stat err = %v", path, err)
	}
}

func TestRead_KeepSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte("{{1},2}"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := New(nil, WithKeepSource(true)).Read(path); err != nil {
		t.Fatalf("Read error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected %s to remain: %v", path, err)
	}
}

func TestRead_MalformedKeepsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte("{{1,2,3, 5"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := New(nil).Read(path); !errors.Is(err, domain.ErrMalformedDescriptor) {
		t.Fatalf("Read error = %v, want ErrMalformedDescriptor", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("malformed descriptor should not be consumed: %v", err)
	}
}

func TestRead_Missing(t *testing.T) {
	_, err := New(nil).Read(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, domain.ErrFileOpen) {
		t.Fatalf("Read error = %v, want ErrFileOpen", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Read error = %v, want os.ErrNotExist in chain", err)
	}
}

func TestRead_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(nil).Read(path); !errors.Is(err, domain.ErrMalformedDescriptor) {
		t.Fatalf("Read error = %v, want ErrMalformedDescriptor", err)
	}
}
