// Package errors is the error model of trakai.
//
// Fatal build conditions are ClassifiedErrors: a category (date, marker,
// filesystem, template and so on) with ordered context fields. Callers test
// for a failure kind with HasCategory; the CLI turns the category into an
// exit code through CLIErrorAdapter.
//
//	err := errors.InvalidDateError("date is missing").
//		WithContext("file", path).
//		Build()
package errors
