package repository

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/bibek0707/finance-tracker1/internal/model"
)

// Entry record layout, no padding between fields:
//
//	[0:30)  date, zero padded
//	[30:38) amount, IEEE-754 float64, little endian
//	[38:88) category, zero padded
//
// The totals record is two little endian float64 values, income then expense.
const (
	dateOffset     = 0
	amountOffset   = dateOffset + model.DateSize
	categoryOffset = amountOffset + 8

	entryRecordSize  = categoryOffset + model.CategorySize
	totalsRecordSize = 16
)

func encodeEntry(dst []byte, e model.Entry) {
	putString(dst[dateOffset:amountOffset], e.Date)
	binary.LittleEndian.PutUint64(dst[amountOffset:categoryOffset], math.Float64bits(e.Amount))
	putString(dst[categoryOffset:entryRecordSize], e.Category)
}

func decodeEntry(src []byte) model.Entry {
	return model.Entry{
		Date:     getString(src[dateOffset:amountOffset]),
		Amount:   math.Float64frombits(binary.LittleEndian.Uint64(src[amountOffset:categoryOffset])),
		Category: getString(src[categoryOffset:entryRecordSize]),
	}
}

func encodeTotals(dst []byte, t model.Totals) {
	binary.LittleEndian.PutUint64(dst[0:8], math.Float64bits(t.Income))
	binary.LittleEndian.PutUint64(dst[8:16], math.Float64bits(t.Expense))
}

func decodeTotals(src []byte) model.Totals {
	return model.Totals{
		Income:  math.Float64frombits(binary.LittleEndian.Uint64(src[0:8])),
		Expense: math.Float64frombits(binary.LittleEndian.Uint64(src[8:16])),
	}
}

// putString writes s into a fixed field, keeping the last byte for the terminating zero.
func putString(field []byte, s string) {
	n := copy(field[:len(field)-1], model.Truncate(s, len(field)-1))
	for i := n; i < len(field); i++ {
		field[i] = 0
	}
}

func getString(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	return string(field)
}
