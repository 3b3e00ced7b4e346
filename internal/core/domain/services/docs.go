// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the production tracking
// system. It implements complex business workflows that don't naturally
// belong to a single aggregate root.
//
// The package includes:
//   - StationRouter: A domain service deciding the legal next step and
//     station for a unit, including the category-dependent routing branch
//     for flanged versus standard items
//
// Domain services coordinate between aggregates, implementing business
// logic that spans multiple bounded contexts following Domain-Driven
// Design principles.
package services
