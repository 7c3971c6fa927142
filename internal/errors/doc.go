// Package errors provides coded, categorised errors for morphed.
//
// Every error has a code (e.g. "M001") registered with a category, a
// short message and a longer explanation. Errors built from a code match
// their category sentinel with the standard library:
//
//	err := errors.New("M001")
//	stderrors.Is(err, errors.InvalidArgument) // true
//
// Format renders the multi-line terminal form used by the CLI;
// FormatCompact renders a single line and FormatJSON a JSON object.
package errors
