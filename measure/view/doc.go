// Package view runs the analysis pipeline for a set of channels: select the
// viewport, weight it with a window and transform it into a one-sided
// magnitude spectrum.
//
// Compute is a pure function of its arguments. Session layers mutable
// viewer state on top of it and drops results that were computed from
// parameters which have since changed.
package view
