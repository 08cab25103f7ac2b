package postgres

import "fmt"

// InvalidAmountError is returned when a transaction amount cannot be stored
// as a numeric column.
type InvalidAmountError struct {
	Hash  string
	Value string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("transaction %s has a non-decimal amount %q", e.Hash, e.Value)
}
