package service

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bibek0707/finance-tracker1/internal/model"
)

const uncategorized = "uncategorized"

// Summarize groups both lists by category. Sums are exact decimal sums of the
// entry amounts, so they can differ in the last digits from the float totals.
func Summarize(income, expenses []model.Entry) model.Report {
	report := model.Report{}
	report.Income, report.TotalIncome = byCategory(income)
	report.Expenses, report.TotalExpense = byCategory(expenses)
	report.Balance = report.TotalIncome.Sub(report.TotalExpense)
	return report
}

func byCategory(entries []model.Entry) ([]model.CategoryAmount, decimal.Decimal) {
	sums := make(map[string]decimal.Decimal)
	total := decimal.Zero
	for _, e := range entries {
		name := e.Category
		if strings.TrimSpace(name) == "" {
			name = uncategorized
		}
		amount := decimal.NewFromFloat(e.Amount)
		sums[name] = sums[name].Add(amount)
		total = total.Add(amount)
	}

	names := make([]string, 0, len(sums))
	for name := range sums {
		names = append(names, name)
	}
	sort.Strings(names)

	categories := make([]model.CategoryAmount, len(names))
	for i, name := range names {
		categories[i] = model.CategoryAmount{Name: name, Amount: sums[name]}
	}
	return categories, total
}

// RenderReport prints a report as plain text, one "category - amount" line per category.
func RenderReport(report model.Report) string {
	var b strings.Builder
	renderSection(&b, "Income", report.Income, report.TotalIncome)
	b.WriteString("\n")
	renderSection(&b, "Expenses", report.Expenses, report.TotalExpense)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Balance - %s", report.Balance.StringFixed(2))
	return b.String()
}

func renderSection(b *strings.Builder, title string, categories []model.CategoryAmount, total decimal.Decimal) {
	fmt.Fprintf(b, "%s\n", title)
	if len(categories) == 0 {
		b.WriteString("No records\n")
		return
	}
	for _, c := range categories {
		fmt.Fprintf(b, "%s - %s\n", c.Name, c.Amount.StringFixed(2))
	}
	fmt.Fprintf(b, "Total - %s\n", total.StringFixed(2))
}

// FormatAmount prints an amount with two decimals.
func FormatAmount(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return strconv.FormatFloat(amount, 'f', 2, 64)
	}
	return decimal.NewFromFloat(amount).StringFixed(2)
}
