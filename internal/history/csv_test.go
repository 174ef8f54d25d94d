package history

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/plugcalc/pkg/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVDecode(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []types.HistoryRecord
		wantErr error
	}{
		{
			name:    "single subtract row",
			content: "operation,operand1,operand2,result\nsubtract,5,2,3\n",
			want:    []types.HistoryRecord{{Operation: types.OpSubtract, Operand1: 5, Operand2: 2, Result: 3}},
		},
		{
			name:    "columns in any order with extras ignored",
			content: "result,note,operand2,operation,operand1\n6,x,2,multiply,3\n2,y,3,divide,6\n",
			want: []types.HistoryRecord{
				{Operation: types.OpMultiply, Operand1: 3, Operand2: 2, Result: 6},
				{Operation: types.OpDivide, Operand1: 6, Operand2: 3, Result: 2},
			},
		},
		{
			name:    "float values written by other tools",
			content: "operation,operand1,operand2,result\nadd,1.0,2.0,3.0\n",
			want:    []types.HistoryRecord{{Operation: types.OpAdd, Operand1: 1, Operand2: 2, Result: 3}},
		},
		{
			name:    "leading byte order mark",
			content: "\ufeffoperation,operand1,operand2,result\nadd,1,2,3\n",
			want:    []types.HistoryRecord{{Operation: types.OpAdd, Operand1: 1, Operand2: 2, Result: 3}},
		},
		{
			name:    "header only",
			content: "operation,operand1,operand2,result\n",
			want:    nil,
		},
		{
			name:    "empty file",
			content: "",
			wantErr: types.ErrInvalidFormat,
		},
		{
			name:    "missing result column",
			content: "operation,operand1,operand2\nadd,1,2\n",
			wantErr: types.ErrInvalidFormat,
		},
		{
			name:    "non-numeric operand",
			content: "operation,operand1,operand2,result\nadd,one,2,3\n",
			wantErr: types.ErrInvalidFormat,
		},
		{
			name:    "unknown operation",
			content: "operation,operand1,operand2,result\npower,2,3,8\n",
			wantErr: types.ErrInvalidFormat,
		},
		{
			name:    "short row",
			content: "operation,operand1,operand2,result\nadd,1,2\n",
			wantErr: types.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "history.csv", tt.content)
			got, err := csvCodec{}.Decode(path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCSVEncodeInfinity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	records := []types.HistoryRecord{{Operation: types.OpMultiply, Operand1: 1e308, Operand2: 10, Result: math.Inf(1)}}

	require.NoError(t, csvCodec{}.Encode(path, records))

	got, err := csvCodec{}.Decode(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, math.IsInf(got[0].Result, 1))
}
