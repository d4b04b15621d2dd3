package ofx

// Diagnostics receives non-fatal notices from a parsing run. Notices never
// influence the output tree or control flow; a caller that does not care
// simply omits the WithDiagnostics option.
type Diagnostics interface {
	// Unrecognized reports a tag present in the input but absent from the
	// schema of the container it appeared under. The element is still
	// recorded as a raw (tag, text) pair for close resolution.
	Unrecognized(container, element, text string)

	// Processed reports the outcome of the run once it completes: nil for
	// success, or the error the run is about to return.
	Processed(err error)
}
