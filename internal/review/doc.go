// Package review defines the record types produced by a review run and the
// orchestrator that walks repositories commit by commit.
//
// A [Review] is the atomic unit: one repository path, one [Commit], one
// [Analysis]. The orchestrator is strictly sequential (each diff fetch is
// followed immediately by its analysis call) and the accumulated Review
// order matches repository listing order nested with commit listing order
// (newest first).
package review
