package cmd

import "errors"

// Failure categories of a run. Every one of them is fatal and exits 1.
var (
	ErrArgument      = errors.New("wrong number of arguments")
	ErrConfig        = errors.New("invalid configuration")
	ErrInputNotFound = errors.New("input file not found")
	ErrOutputWrite   = errors.New("writing output failed")
)
