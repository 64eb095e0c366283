package domain

// Report summarizes one root's traversal: how many files were dispatched to
// the sink and how many errors were observed along the way. Files counts
// dispatches, not sink successes; a sink failure shows up in Errors while the
// file stays counted.
type Report struct {
	Root   string
	Files  int
	Errors int
}

// Clean reports whether the traversal completed without observing any error.
func (r Report) Clean() bool {
	return r.Errors == 0
}
