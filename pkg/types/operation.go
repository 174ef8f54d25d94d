package types

import "fmt"

// Operation names one of the four arithmetic operations recorded in history.
type Operation string

// Operation values as they appear in the history operation column.
const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// Operations lists every valid Operation in display order.
var Operations = []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}

var operationSymbols = map[Operation]string{
	OpAdd:      "+",
	OpSubtract: "-",
	OpMultiply: "*",
	OpDivide:   "/",
}

// Symbol returns the infix operator for the operation, or "" if the
// operation is not valid.
func (o Operation) Symbol() string {
	return operationSymbols[o]
}

// Valid reports whether o is one of the four known operations.
func (o Operation) Valid() bool {
	_, ok := operationSymbols[o]
	return ok
}

// ParseOperation converts a history column value into an Operation.
// Returns ErrUnknownOperation if name is not a known operation.
func ParseOperation(name string) (Operation, error) {
	op := Operation(name)
	if !op.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return op, nil
}

// OperationForSymbol maps an infix operator (+, -, *, /) to its Operation.
// Returns ErrUnknownOperation for any other symbol.
func OperationForSymbol(sym string) (Operation, error) {
	for op, s := range operationSymbols {
		if s == sym {
			return op, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, sym)
}
