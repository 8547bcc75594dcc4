// Package ports defines the interfaces that connect the pipeline
// orchestrator to infrastructure adapters.
//
// # Port Interfaces
//
//   - [Solver]: runs the external lattice-point solver on an input file
//   - [Logger]: structured logging abstraction
//
// # Usage
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with a real
// subprocess runner; tests substitute stubs that write canned reports.
package ports
