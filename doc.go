// Package precipgnn predicts annual precipitation at California weather
// stations from altitude and spatial graph structure: a k-nearest-neighbor
// graph over geocoordinates feeds a two-layer graph-convolutional network,
// scored against a global linear baseline on the same held-out vertices.
//
// 🚀 What is precipgnn?
//
//	A small, fully deterministic modeling pipeline built from four pieces:
//	  • dataset/  — CSV ingestion of per-station records
//	  • knngraph/ — haversine distance matrix, kNN edges, vertex features
//	  • graphio/  — GraphML + aligned value files between the two stages
//	  • regress/  — GCN training/evaluation (gorgonia) and OLS baseline (gonum)
//
// ✨ Why this layout?
//
//   - Reproducible – one root seed, decorrelated substreams for shuffle,
//     partition and weight initialization
//   - Strict sentinels – every failure class is an errors.Is-matchable
//     package-level error; no panics on bad input
//   - Honest metrics – the reported test error always comes from a
//     dropout-free forward pass
//
// The pipeline is wired end to end in cmd/precipgnn:
//
//	go run ./cmd/precipgnn -input california_rain.csv -seed 42
package precipgnn
