// Package dephase implements the dephasing basecaller core for a single
// Ion-Torrent-style sequencing well: a forward phasing simulator and a
// bounded tree-search solver that inverts it.
//
// # Reading Guide
//
// Start with these files to understand the core:
//   - floworder.go: the nucleotide cycling schedule (FlowOrder)
//   - model.go: the (cf, ie, dr) phasing coefficient matrices (PhasingModel)
//   - path.go: the fixed-size candidate-path pool (TreephaserPath)
//   - advance.go: the one-base forward step (PathAdvancer)
//   - simulate.go: Simulate and QueryState, built on PathAdvancer
//   - solve.go: the beam-search Solve loop and the NormalizeAndSolve variants
//   - normalize.go: windowed additive/multiplicative normalization
//   - qv.go: per-base quality-value metric pass
//
// # Architecture
//
// Data flows strictly forward: measurements -> normalization <-> solver
// (iterated) -> predictions + sequence -> QV metrics. A single Treephaser
// owns one PhasingModel and one fixed pool of kNumPaths candidate paths; it
// holds no other state and is safe to reuse across wells but never to share
// across goroutines. Package cmd builds one Treephaser per invocation for a
// single well and runs it on one goroutine.
//
// This package never reads files, opens sockets, or knows about images,
// background traces, or threads. Trace-file I/O lives in package cmd; image
// loading, background estimation and multi-well orchestration are not part
// of this module.
package dephase
