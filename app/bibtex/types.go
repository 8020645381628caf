package bibtex

// Entry is a single parsed bibliography entry. Field names are kept
// case-sensitive as written; a duplicate field name within one entry
// overwrites the earlier value.
type Entry struct {
	Type   string
	Key    string
	Fields map[string]string
}
