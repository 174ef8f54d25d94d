package plugin

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/plugcalc/pkg/types"
)

type tally struct{ n float64 }

func (t *tally) Run(args ...float64) (float64, error) {
	t.n++
	return t.n, nil
}

func newTestExecutor() (*Executor, *Registry) {
	reg := NewRegistry(nil)
	reg.Register("sum", types.PluginFunc(func(args ...float64) (float64, error) {
		total := 0.0
		for _, a := range args {
			total += a
		}
		return total, nil
	}))
	reg.Register("fails", types.PluginFunc(func(args ...float64) (float64, error) {
		return 0, errors.New("bad input")
	}))
	reg.Register("panics", types.PluginFunc(func(args ...float64) (float64, error) {
		return args[5], nil
	}))
	var nilFunc types.PluginFunc
	reg.Register("nilfunc", nilFunc)
	reg.Register("invalid_plugin", nil)
	var nilTally *tally
	reg.Register("niltally", nilTally)
	return NewExecutor(reg, nil), reg
}

func TestExecutorInvoke(t *testing.T) {
	exec, _ := newTestExecutor()

	tests := []struct {
		name    string
		plugin  string
		args    []float64
		want    float64
		wantErr error
	}{
		{name: "success", plugin: "sum", args: []float64{1, 2, 3}, want: 6},
		{name: "no args", plugin: "sum", want: 0},
		{name: "unknown plugin", plugin: "nonexistent_plugin", args: []float64{2}, wantErr: types.ErrPluginNotFound},
		{name: "nil unit", plugin: "invalid_plugin", args: []float64{5}, wantErr: types.ErrPluginInterface},
		{name: "nil func", plugin: "nilfunc", args: []float64{5}, wantErr: types.ErrPluginInterface},
		{name: "typed nil pointer", plugin: "niltally", args: []float64{5}, wantErr: types.ErrPluginInterface},
		{name: "plugin error", plugin: "fails", args: []float64{1}, wantErr: types.ErrPluginExecution},
		{name: "plugin panic", plugin: "panics", args: []float64{1}, wantErr: types.ErrPluginExecution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := exec.invoke(tt.plugin, tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecutorExecutionErrorWrapsCause(t *testing.T) {
	exec, _ := newTestExecutor()

	_, err := exec.invoke("fails", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad input")
}

func TestExecutorExecuteNeverPropagates(t *testing.T) {
	logger, logs := observedLogger()
	_, reg := newTestExecutor()
	exec := NewExecutor(reg, logger)

	for _, name := range []string{"nonexistent_plugin", "invalid_plugin", "fails", "panics"} {
		t.Run(name, func(t *testing.T) {
			got, ok := exec.Execute(name, 2)
			assert.False(t, ok)
			assert.Zero(t, got)
		})
	}
	assert.Equal(t, 4, logs.FilterMessage("plugin failed").Len())

	got, ok := exec.Execute("sum", 2, 3)
	assert.True(t, ok)
	assert.Equal(t, 5.0, got)
}
