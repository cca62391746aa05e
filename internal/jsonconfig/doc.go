// Package jsonconfig keeps a JSON config file on disk in the shape of an
// in-memory default document.
//
// Values are modelled as a tagged variant (Value/Kind) over null, bool, int,
// float, string, array and object, and documents preserve key insertion
// order so files are written in the order the defaults were declared.
//
// A Reconciler resolves each Ensure call to exactly one outcome: the file is
// created when absent, replaced when it is not a JSON object, replaced when
// its top-level keys or value kinds drift from the defaults, and otherwise
// left untouched. Nested objects are accepted without deep inspection.
// Replacing a drifted file discards whatever valid entries it held; enable
// Options.Backup to keep a copy.
//
// Persist writes a caller's current document and recovers once from a
// missing directory by running Ensure first. Caller mistakes are reported
// with ErrValidation before any I/O; filesystem errors are returned wrapped.
package jsonconfig
