package model

import "github.com/shopspring/decimal"

type CategoryAmount struct {
	Name   string
	Amount decimal.Decimal
}

// Report is a summary of the ledger grouped by category
type Report struct {
	Income   []CategoryAmount
	Expenses []CategoryAmount

	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}
