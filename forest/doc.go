// Package forest implements the non-orchestration primitives a
// decision-tree/random-forest trainer needs at a single node:
//
//   - Split scorers — Gini, entropy, and Kolmogorov–Smirnov-like
//     dispersion, each parameterised by an optimisation direction and
//     swept once per candidate feature dimension.
//   - Stop predicates — purity, max depth, minimum node size, and an
//     MDL-style node-complexity prior.
//   - Options — an immutable, validated configuration builder for tree
//     count, feature budget, sampling policy, and split metric.
//   - Posterior accumulators — running class-frequency vectors with
//     grow-only scratch buffers.
//
// forest deliberately stops at the single node: bagging, parallel tree
// construction, and ensemble (de)serialization belong to an outer
// orchestrator that consumes these primitives.
//
//	go get github.com/zgsxwsdxg/vigra/forest
package forest
