package domain

// ImageTable maps an exact film title to an image reference.
// A zero ImageTable is valid and resolves nothing.
type ImageTable struct {
	refs map[string]string
}

// NewImageTable creates a table from title -> reference pairs.
// Empty titles and references are skipped.
func NewImageTable(refs map[string]string) ImageTable {
	t := ImageTable{refs: make(map[string]string, len(refs))}
	for title, ref := range refs {
		if title == "" || ref == "" {
			continue
		}
		t.refs[title] = ref
	}
	return t
}

// Lookup returns the image reference for an exact title match
func (t ImageTable) Lookup(title string) (string, bool) {
	ref, ok := t.refs[title]
	return ref, ok
}

// Len returns the number of entries in the table
func (t ImageTable) Len() int {
	return len(t.refs)
}
