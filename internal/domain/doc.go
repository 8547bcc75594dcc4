// Package domain contains the core entities and error values for normbridge.
//
// This package is the innermost layer. It has no dependencies on
// infrastructure concerns (subprocesses, file system, logging) and holds
// only the data that flows between pipeline stages.
//
// # Entities
//
//   - [Descriptor]: the parsed {{i1,...,ik},n} input pair
//   - [IntegerSequence]: the ordered coordinates of a descriptor
//   - [BasisSet]: the Hilbert basis vectors extracted from a solver report
//
// # Design Principles
//
// Entities are:
//   - Built once by a parser and never mutated afterwards
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
