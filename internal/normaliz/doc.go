// Package normaliz speaks the two plain-text formats of the Normaliz
// solver: the .in file it reads and the .out report it writes.
package normaliz

// File extensions Normaliz reads and writes next to an input file.
const (
	InputExt  = ".in"
	ReportExt = ".out"
)

// ArtifactExts lists every file Normaliz may leave behind for a stem,
// including the input the bridge generates.
var ArtifactExts = []string{InputExt, ReportExt, ".gen", ".hil", ".err", ".det", ".syz"}
