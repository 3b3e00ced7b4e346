// Package unit provides the Unit aggregate: the authoritative record of one
// physical manufactured item as it moves through the production workflow.
//
// The package includes:
//   - Unit: The aggregate root tracking identity, current station, current
//     step, measurements, inspection history, and flags
//   - Step: The workflow state machine with its legal-transition table
//   - Inspection: A value object capturing one quality-check outcome
//   - AuditEntry: A traceability record appended on every step change
//
// Key business rules:
//   - A unit's lot number is immutable once minted
//   - Step and station move together under router rules; a unit is never
//     in a step that is illegal for its station
//   - Finished and REJECTED are terminal: no further step or station
//     mutation is permitted, though measurement appends remain allowed
//   - A unit held in HOLD_AREA can only re-enter the flow at the step it
//     was held from
package unit
