package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperation(t *testing.T) {
	for _, op := range Operations {
		got, err := ParseOperation(string(op))
		require.NoError(t, err)
		assert.Equal(t, op, got)
	}

	_, err := ParseOperation("modulo")
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestOperationForSymbol(t *testing.T) {
	tests := []struct {
		sym  string
		want Operation
	}{
		{"+", OpAdd},
		{"-", OpSubtract},
		{"*", OpMultiply},
		{"/", OpDivide},
	}
	for _, tt := range tests {
		t.Run(tt.sym, func(t *testing.T) {
			got, err := OperationForSymbol(tt.sym)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.sym, got.Symbol())
		})
	}

	_, err := OperationForSymbol("%")
	assert.ErrorIs(t, err, ErrUnknownOperation)
}
