package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecute(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name     string
		op       Operation[int, int, string]
		want     string
		wantStep ExecutionStep
	}{
		{
			name: "all steps succeed",
			op: Operation[int, int, string]{
				Name:     "double",
				Validate: func(context.Context, int) error { return nil },
				Perform:  func(_ context.Context, in int) (int, error) { return in * 2, nil },
				Verify:   func(context.Context, int, int) error { return nil },
				Respond: func(_ context.Context, _ int, p int) (string, error) {
					if p == 42 {
						return "forty-two", nil
					}
					return "other", nil
				},
			},
			want: "forty-two",
		},
		{
			name: "validate fails",
			op: Operation[int, int, string]{
				Validate: func(context.Context, int) error { return errBoom },
				Perform: func(context.Context, int) (int, error) {
					panic("perform must not run")
				},
			},
			wantStep: StepValidate,
		},
		{
			name: "perform fails",
			op: Operation[int, int, string]{
				Perform: func(context.Context, int) (int, error) { return 0, errBoom },
			},
			wantStep: StepPerform,
		},
		{
			name: "verify fails",
			op: Operation[int, int, string]{
				Perform: func(_ context.Context, in int) (int, error) { return in, nil },
				Verify:  func(context.Context, int, int) error { return errBoom },
			},
			wantStep: StepVerify,
		},
		{
			name: "respond fails",
			op: Operation[int, int, string]{
				Respond: func(context.Context, int, int) (string, error) { return "", errBoom },
			},
			wantStep: StepRespond,
		},
		{
			name: "nil respond yields zero value",
			op:   Operation[int, int, string]{Perform: func(_ context.Context, in int) (int, error) { return in, nil }},
			want: "",
		},
	}

	exec := NewExecutor(discardLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Execute(t.Context(), exec, tt.op, 21)

			if tt.wantStep != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, errBoom)
				assert.True(t, IsExecutionError(err))

				step, ok := GetExecutionStep(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantStep, step)
				assert.Empty(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecutionError_Error(t *testing.T) {
	withCause := &ExecutionError{Step: StepPerform, Message: "operation failed", Cause: errors.New("boom")}
	assert.Equal(t, "perform failed: operation failed: boom", withCause.Error())

	withoutCause := &ExecutionError{Step: StepVerify, Message: "verification failed"}
	assert.Equal(t, "verify failed: verification failed", withoutCause.Error())
}

func TestGetExecutionStep_NotExecutionError(t *testing.T) {
	step, ok := GetExecutionStep(errors.New("plain"))

	assert.False(t, ok)
	assert.Empty(t, step)
	assert.False(t, IsExecutionError(nil))
}

func TestNewExecutor_NilLogger(t *testing.T) {
	exec := NewExecutor(nil)

	require.NotNil(t, exec)
	assert.NotNil(t, exec.logger)
}
