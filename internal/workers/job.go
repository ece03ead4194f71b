package workers

import "context"

type JobID string

type JobDescriptor struct {
	ID JobID
}

type ExecutionFn[T any] func(ctx context.Context) (T, error)

type Job[T any] struct {
	Description JobDescriptor
	ExecFn      ExecutionFn[T]
}

type Result[T any] struct {
	Value       T
	Err         error
	Description JobDescriptor
}

func (j Job[T]) execute(ctx context.Context) Result[T] {
	value, err := j.ExecFn(ctx)
	if err != nil {
		return Result[T]{
			Err:         err,
			Description: j.Description,
		}
	}

	return Result[T]{
		Value:       value,
		Description: j.Description,
	}
}
