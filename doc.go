// Package campus is a small, explicit illustration of aggregation in Go.
//
// Aggregation is a "has-a" relationship where the container holds a
// non-owning reference: the contained object's lifetime is managed by
// whoever created it, not by the container. Go has no destructors, so the
// relationship is expressed through ownership of lifetime operations:
//
//   - registry: an owner (arena) that hands out Handles and alone can Retire values
//   - campus: Teachers owned by a Directory, linked (never owned) by Universities;
//     Departments show the contrasting composition case
//   - config: TOML/YAML rosters and environment settings
//   - internal/app: composition root that wires a campus from a roster
//   - cmd/campus: the walkthrough CLI
//   - examples/*: hand-wired runnable examples
//
// Start with examples/aggregation for the smallest end-to-end program.
package campus
