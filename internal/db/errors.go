package db

import "errors"

// ErrNotFound marks a point-query miss. Call sites that treat absence as a
// normal outcome (no prior-year comparison, first-ever lookup) recover it
// to a nil result; everything else propagates it.
var ErrNotFound = errors.New("record not found")
