// Package dataset loads per-location precipitation records from a
// delimited table and exposes them as immutable Location values.
//
// 🚀 What does dataset do?
//
//	It is the ingestion boundary of precipgnn: one CSV row per weather
//	station, with name, geocoordinates, altitude and twelve monthly
//	precipitation values. Everything downstream (graph construction,
//	training, evaluation) consumes []Location and never touches files.
//
// ✨ Guarantees:
//   - Strict validation at load time: short rows, empty cells and
//     non-numeric fields are rejected with sentinel errors.
//   - Location values are plain structs; once returned they are never
//     mutated by this module.
//   - Row order is preserved exactly as read; any reordering is the
//     responsibility of the graph builder (deterministic shuffle).
//
// ⚙️ Usage:
//
//	locs, err := dataset.LoadFile("california_rain.csv")
//	if err != nil {
//	  // errors.Is(err, dataset.ErrMissingField) etc.
//	}
//	total := locs[0].AnnualTotal()
//
// Errors: ErrNoRecords, ErrMissingField, ErrBadRecord (see types.go).
package dataset
