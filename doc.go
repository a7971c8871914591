// Package stagecoach is a compact playground for the classic stagecoach
// problem: finding the minimum-cost route through a fixed, layered DAG
// by dynamic programming.
//
// 🚀 What is stagecoach?
//
//	A small, thread-safe, pure-Go library that brings together:
//		• Core primitives: a validated staged topology and a graph with mutable edge weights
//		• Weight management: canonical defaults, uniform random fills, zero resets, single-edge edits
//		• Backward induction: the Bellman recurrence evaluated in reverse stage order
//		• Path reconstruction: total cost, the optimal route, and per-step costs
//
// ✨ Why choose stagecoach?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – stable edge order, documented tie-breaking, seedable randomness
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – sentinel errors for every contract violation, never silent recovery
//
// Under the hood, everything is organized under two subpackages:
//
//	core/      — NodeID, Stage, Edge, Topology and the mutable-weight Graph
//	induction/ — the backward-induction solver and its Result
//
// The canonical problem, stage by stage:
//
//	start A; stage 1 = {B,C,D}; stage 2 = {E,F,G}; stage 3 = {H,I}; target J;
//	18 directed edges, each connecting a node in stage k to a node in stage k+1.
//
// Dive into the package docs and examples/ for full scenarios.
//
//	go get github.com/katalvlaran/stagecoach
package stagecoach
