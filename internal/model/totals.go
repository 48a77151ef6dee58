package model

// Totals is the cached sum of each entry list. It is never recomputed from the
// lists, so every append has to be followed by exactly one Record call.
type Totals struct {
	Income  float64
	Expense float64
}

func (t *Totals) Record(kind Kind, amount float64) {
	switch kind {
	case Income:
		t.Income += amount
	case Expense:
		t.Expense += amount
	}
}

func (t Totals) Balance() float64 {
	return t.Income - t.Expense
}
