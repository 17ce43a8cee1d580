package data

import "errors"

var (
	// FormatErr signals a label or line that cannot be encoded.
	FormatErr = errors.New("format error")
	// UnknownEntityErr signals a lookup for an attribute or name that is not part of a set.
	UnknownEntityErr = errors.New("unknown entity")
	// PreconditionErr signals an operation on a structure that is not ready for it,
	// e.g. classifying without training data.
	PreconditionErr = errors.New("precondition failed")
	// RangeErr signals fractions that leave no room for the requested partitions.
	RangeErr = errors.New("out of range")
	// NonTerminatingSampleErr signals a stratum that has fewer examples than requested.
	NonTerminatingSampleErr = errors.New("sample cannot terminate")
)
