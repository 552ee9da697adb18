// Package tabiplan provides the domain logic for a local-first, single-trip
// itinerary planner.
//
// The core functionalities include:
//   - Card Store: the canonical collection of travel cards (flights,
//     activities, meals, lodging), appended and soft-deleted but never
//     removed, with the whole collection as the unit of persistence.
//   - View Projections: pure derivations over the collection: the distinct
//     trip days, a day's active schedule in time order, the day's
//     accommodation card, and the day's exact expense total.
//   - Enrichment: an optional collaborator that supplies descriptive fields
//     and a suggested budget for new cards; its failures never block card
//     creation.
//   - Data Persistence: encoding and decoding the collection to a
//     human-readable, version-controllable JSONL form, behind a storage port
//     with file and key-value backends.
//
// This package serves as the foundational logic for the `tabi` command-line
// tool and the HTTP API, ensuring that all surfaces derive from a single
// source of truth.
package tabiplan
