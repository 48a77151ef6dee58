package model

import "unicode/utf8"

// Field capacities of an entry record on disk. One byte of each is kept for the
// terminating zero, so the stored text is at most size-1 bytes long.
const (
	DateSize     = 30
	CategorySize = 50
)

type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// Entry is one record of expenses or income
type Entry struct {
	Date     string
	Amount   float64
	Category string
}

// NewEntry cuts date and category down to what fits in a record, so an entry
// kept in memory is the same one read back from the file.
func NewEntry(date string, amount float64, category string) Entry {
	return Entry{
		Date:     Truncate(date, DateSize-1),
		Amount:   amount,
		Category: Truncate(category, CategorySize-1),
	}
}

// Truncate returns the longest prefix of s not longer than n bytes that does not
// split a UTF-8 sequence.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
