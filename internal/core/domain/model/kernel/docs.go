// Package kernel provides core domain primitives for the production tracking
// system. It implements fundamental building blocks following Domain-Driven
// Design principles that are used throughout the domain model.
//
// The package includes:
//   - LotNumber: A value object encoding the identity of one physical unit
//   - ItemClass: Classification of an item, resolved once at unit creation
//   - UUID: A value object for unique identifiers used by audit entries
//     and notification correlation
//   - NormalizeStationCode: Boundary normalization of free-text station names
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are designed to be
// immutable and thread-safe, making them suitable for concurrent use.
package kernel
