package fetch

import "fmt"

// Failure records one item of the tree that could not be downloaded.
type Failure struct {
	ID   string
	Name string
	Err  error
}

func (f Failure) String() string {
	return fmt.Sprintf("failed to download (%s) %q: %v", f.ID, f.Name, f.Err)
}

// Report aggregates the outcome of one download tree. Files counts plain
// files and exported documents that were written; Folders counts
// directories that were created (or reused) and fully listed.
type Report struct {
	Files    int
	Folders  int
	Failures []Failure
}

// OK reports whether the whole tree downloaded without failures.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}
