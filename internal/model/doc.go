// Package model defines the result structures produced by a stamping run:
// per-file outcomes and the aggregated run report.
package model
