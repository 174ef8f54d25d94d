package types

// History column names, in file order.
const (
	ColumnOperation = "operation"
	ColumnOperand1  = "operand1"
	ColumnOperand2  = "operand2"
	ColumnResult    = "result"
)

// HistoryColumns lists the required history columns in file order.
var HistoryColumns = []string{ColumnOperation, ColumnOperand1, ColumnOperand2, ColumnResult}

// HistoryRecord is one performed arithmetic operation. Records are values;
// the history log never mutates a record after appending it.
type HistoryRecord struct {
	Operation Operation `json:"operation"`
	Operand1  float64   `json:"operand1"`
	Operand2  float64   `json:"operand2"`
	Result    float64   `json:"result"`
}
