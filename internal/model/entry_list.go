package model

// EntryList keeps entries in insertion order. Entries are never edited or removed,
// the list only grows until it is replaced by a reload.
type EntryList struct {
	entries []Entry
}

func NewEntryList(entries ...Entry) *EntryList {
	l := &EntryList{}
	l.entries = append(l.entries, entries...)
	return l
}

func (l *EntryList) Append(entry Entry) {
	l.entries = append(l.entries, entry)
}

// Entries returns a copy of the list, oldest entry first.
func (l *EntryList) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *EntryList) Len() int {
	return len(l.entries)
}

// Sum adds the amounts in insertion order, the same order the running totals use,
// so both give bit-identical results.
func (l *EntryList) Sum() float64 {
	var sum float64
	for _, e := range l.entries {
		sum += e.Amount
	}
	return sum
}
