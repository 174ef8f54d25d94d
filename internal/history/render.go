package history

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// emptyMessage is rendered in place of a table when the log has no records.
const emptyMessage = "History is empty"

// Render returns the log as an aligned table: a header row followed by one
// indexed row per record, oldest first.
func (l *Log) Render() string {
	if len(l.records) == 0 {
		return emptyMessage
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\toperation\toperand1\toperand2\tresult")
	for i, rec := range l.records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i, rec.Operation,
			formatFloat(rec.Operand1), formatFloat(rec.Operand2), formatFloat(rec.Result))
	}
	tw.Flush()
	return strings.TrimRight(sb.String(), "\n")
}
