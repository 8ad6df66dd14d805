// Package fcheck implements a finite-domain constraint satisfaction solver
// using chronological backtracking augmented with forward checking.
//
// A caller builds a Model by declaring integer variables with finite
// domains and posting constraints between them, calls Finalize once, then
// drives the search with an Assignment and Model.ForwardCheckingStep. The
// solver either reports a complete satisfying assignment or exhausts the
// search and reports failure; there is no optimization objective, no
// enumeration of further solutions, and no learning across backtracks.
//
// The package is deliberately free of I/O, logging, and configuration
// loading: its only inputs are the variables and constraints a caller
// registers programmatically, and its only output is the solver's
// assignment state.
package fcheck
