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

func TestJSONLEncodeOneObjectPerLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")
	records := []types.HistoryRecord{
		{Operation: types.OpAdd, Operand1: 1, Operand2: 2, Result: 3},
		{Operation: types.OpDivide, Operand1: 6, Operand2: 2, Result: 3},
	}

	require.NoError(t, jsonlCodec{}.Encode(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		`{"operation":"add","operand1":1,"operand2":2,"result":3}`+"\n"+
			`{"operation":"divide","operand1":6,"operand2":2,"result":3}`+"\n",
		string(data))
}

func TestJSONLDecode(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []types.HistoryRecord
		wantErr error
	}{
		{
			name:    "blank lines and unknown fields are ignored",
			content: "\n{\"operation\":\"add\",\"operand1\":1,\"operand2\":2,\"result\":3,\"at\":\"now\"}\n\n",
			want:    []types.HistoryRecord{{Operation: types.OpAdd, Operand1: 1, Operand2: 2, Result: 3}},
		},
		{
			name:    "missing operand2",
			content: `{"operation":"add","operand1":1,"result":3}` + "\n",
			wantErr: types.ErrInvalidFormat,
		},
		{
			name:    "malformed line",
			content: "{not json\n",
			wantErr: types.ErrInvalidFormat,
		},
		{
			name:    "unknown operation",
			content: `{"operation":"modulo","operand1":1,"operand2":2,"result":1}` + "\n",
			wantErr: types.ErrInvalidFormat,
		},
		{
			name:    "null operand",
			content: `{"operation":"add","operand1":null,"operand2":2,"result":3}` + "\n",
			wantErr: types.ErrInvalidFormat,
		},
		{
			name:    "string operand",
			content: `{"operation":"add","operand1":"1","operand2":2,"result":3}` + "\n",
			wantErr: types.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "history.jsonl", tt.content)
			got, err := jsonlCodec{}.Decode(path)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONLNonFiniteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")
	records := []types.HistoryRecord{
		{Operation: types.OpMultiply, Operand1: 1e308, Operand2: 10, Result: math.Inf(1)},
		{Operation: types.OpMultiply, Operand1: -1e308, Operand2: 10, Result: math.Inf(-1)},
		{Operation: types.OpSubtract, Operand1: math.Inf(1), Operand2: math.Inf(1), Result: math.NaN()},
	}

	require.NoError(t, jsonlCodec{}.Encode(path, records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"result":"+Inf"`)
	assert.Contains(t, string(data), `"result":"-Inf"`)
	assert.Contains(t, string(data), `"result":"NaN"`)

	got, err := jsonlCodec{}.Decode(path)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, math.IsInf(got[0].Result, 1))
	assert.Equal(t, 1e308, got[0].Operand1)
	assert.True(t, math.IsInf(got[1].Result, -1))
	assert.True(t, math.IsInf(got[2].Operand1, 1))
	assert.True(t, math.IsNaN(got[2].Result))
}
