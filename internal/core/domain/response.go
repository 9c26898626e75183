package domain

import "strings"

// OpenAnswer is the stored value of an open question.
// List answers carry Items (possibly empty, never nil); plain answers carry Text.
type OpenAnswer struct {
	Text  string
	Items []string
}

// IsList returns true if the answer was stored as a list.
func (a OpenAnswer) IsList() bool {
	return a.Items != nil
}

// Value returns the wire value: a string, or a slice of strings for lists.
func (a OpenAnswer) Value() any {
	if a.IsList() {
		return a.Items
	}
	return a.Text
}

// Display returns the answer as a single line of text.
func (a OpenAnswer) Display() string {
	if a.IsList() {
		return strings.Join(a.Items, ", ")
	}
	return a.Text
}

// ResponseSet holds every answer collected in one run, partitioned by kind.
type ResponseSet struct {
	Ratings map[string]int
	Open    map[string]OpenAnswer
}

// NewResponseSet returns an empty response set.
func NewResponseSet() ResponseSet {
	return ResponseSet{
		Ratings: make(map[string]int),
		Open:    make(map[string]OpenAnswer),
	}
}

// Len returns the total number of answers.
func (r ResponseSet) Len() int {
	return len(r.Ratings) + len(r.Open)
}

// Has returns true if the identifier has been answered.
func (r ResponseSet) Has(id string) bool {
	if _, ok := r.Ratings[id]; ok {
		return true
	}
	_, ok := r.Open[id]
	return ok
}

// Clone returns a deep copy.
func (r ResponseSet) Clone() ResponseSet {
	out := NewResponseSet()
	for k, v := range r.Ratings {
		out.Ratings[k] = v
	}
	for k, v := range r.Open {
		if v.Items != nil {
			v.Items = append(make([]string, 0, len(v.Items)), v.Items...)
		}
		out.Open[k] = v
	}
	return out
}

// SplitList splits a raw list answer on commas, trims each item and drops
// empty items. The result is never nil.
func SplitList(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if item := strings.TrimSpace(p); item != "" {
			items = append(items, item)
		}
	}
	return items
}
