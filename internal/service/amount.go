package service

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ValidationErr = errors.New("invalid amount")

// ParseAmount turns user input into an amount, rejecting text that is not a
// number and numbers AddIncome and AddExpense would refuse.
func ParseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ValidationErr, s)
	}
	if err = validateAmount(amount); err != nil {
		return 0, err
	}
	return amount, nil
}

func validateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("%w: %v is not a finite number", ValidationErr, amount)
	}
	if amount < 0 {
		return fmt.Errorf("%w: %v is negative", ValidationErr, amount)
	}
	return nil
}
