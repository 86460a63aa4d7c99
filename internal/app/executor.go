package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/delivery-cost-service/internal/platform/logging"
)

// Operations run as Validate → Perform → Verify → Respond.
//
//  1. VALIDATE - check preconditions before doing any work
//  2. PERFORM  - compute the result
//  3. VERIFY   - check the result against independent invariants
//  4. RESPOND  - shape the verified result for the caller
//
// Each failure is wrapped in an ExecutionError naming the step, and the
// original cause stays reachable through errors.Is/As.

// ExecutionStep represents a step of an operation.
type ExecutionStep string

const (
	StepValidate ExecutionStep = "validate"
	StepPerform  ExecutionStep = "perform"
	StepVerify   ExecutionStep = "verify"
	StepRespond  ExecutionStep = "respond"
)

// ExecutionError wraps errors with the step where they occurred.
type ExecutionError struct {
	Step    ExecutionStep
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %s: %v", e.Step, e.Message, e.Cause)
	}

	return fmt.Sprintf("%s failed: %s", e.Step, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// Executor runs operations step by step, logging each one.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor creates a new executor. A nil logger falls back to slog.Default().
func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger}
}

// Operation defines the functions for each step. Nil steps are skipped;
// a nil Verify passes the performed value through unchanged.
type Operation[I, P, O any] struct {
	// Name identifies this operation for logging.
	Name string

	Validate func(ctx context.Context, input I) error

	Perform func(ctx context.Context, input I) (P, error)

	Verify func(ctx context.Context, input I, performed P) error

	Respond func(ctx context.Context, input I, performed P) (O, error)
}

// Execute runs an operation through all steps.
func Execute[I, P, O any](ctx context.Context, exec *Executor, op Operation[I, P, O], input I) (O, error) {
	var zero O

	logger := logging.FromContextOr(ctx, exec.logger).With(slog.String("operation", op.Name))
	start := time.Now()

	if op.Validate != nil {
		if err := op.Validate(ctx, input); err != nil {
			logger.DebugContext(ctx, "validation failed", slog.Any("error", err))
			return zero, &ExecutionError{Step: StepValidate, Message: "input validation failed", Cause: err}
		}
	}

	var performed P

	if op.Perform != nil {
		var err error

		performed, err = op.Perform(ctx, input)
		if err != nil {
			logger.DebugContext(ctx, "perform failed", slog.Any("error", err))
			return zero, &ExecutionError{Step: StepPerform, Message: "operation failed", Cause: err}
		}
	}

	if op.Verify != nil {
		if err := op.Verify(ctx, input, performed); err != nil {
			logger.ErrorContext(ctx, "verification failed", slog.Any("error", err))
			return zero, &ExecutionError{Step: StepVerify, Message: "verification failed", Cause: err}
		}
	}

	if op.Respond == nil {
		return zero, nil
	}

	result, err := op.Respond(ctx, input, performed)
	if err != nil {
		logger.WarnContext(ctx, "respond formatting failed", slog.Any("error", err))
		return zero, &ExecutionError{Step: StepRespond, Message: "response failed", Cause: err}
	}

	logger.Log(ctx, logging.LevelTrace, "operation completed",
		slog.Duration("duration", time.Since(start)),
	)

	return result, nil
}

// IsExecutionError checks if an error occurred during execution.
func IsExecutionError(err error) bool {
	var execErr *ExecutionError

	return errors.As(err, &execErr)
}

// GetExecutionStep extracts the step from an execution error.
func GetExecutionStep(err error) (ExecutionStep, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Step, true
	}

	return "", false
}
