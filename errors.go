package ildrank

import "errors"

// Sentinel errors for the failure conditions of extraction and ranking.
// They are returned wrapped with call-site context; match them with
// errors.Is. An undefined ratio (zero reference distance) is not an error:
// it is flagged on the value itself (see BaselineDistance.Undefined).
var (
	// ErrDegenerateInput marks a population with no configurations or
	// with fewer than 2 landmarks per configuration.
	ErrDegenerateInput = errors.New("ildrank: degenerate input")

	// ErrShapeMismatch marks configurations that disagree in landmark
	// count or coordinate dimension within one extraction.
	ErrShapeMismatch = errors.New("ildrank: configuration shape mismatch")

	// ErrDimensionMismatch marks ranking inputs that disagree in length
	// or label identity: group count vs. population rows, or label sets
	// between the population, reference, and target tables.
	ErrDimensionMismatch = errors.New("ildrank: dimension mismatch")

	// ErrEmptySelection is returned when no distance's effect size
	// strictly exceeds the quantile cutoff. Lower Config.Quantile to
	// widen the selection.
	ErrEmptySelection = errors.New("ildrank: no distance exceeds the effect-size cutoff")
)
