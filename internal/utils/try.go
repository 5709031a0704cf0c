package utils

import (
	"fmt"

	"github.com/suchimauz/goodx-diary-web/internal/core/ports/out"
)

// Result - итог операции: либо данные, либо ошибка
type Result[T any] struct {
	Data T
	Err  error
}

func (r Result[T]) Unwrap() (T, error) {
	return r.Data, r.Err
}

func (r Result[T]) Failed() bool {
	return r.Err != nil
}

// Try выполняет операцию и сворачивает любой исход, включая панику, в Result.
// Ошибка логируется с названием операции и дальше не пробрасывается
func Try[T any](logger out.LoggerPort, operation string, fn func() (T, error)) (result Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", r)
			}
			result = Result[T]{Err: err}
			logFailure(logger, operation, err)
		}
	}()

	data, err := fn()
	if err != nil {
		logFailure(logger, operation, err)
		return Result[T]{Err: err}
	}

	return Result[T]{Data: data}
}

func logFailure(logger out.LoggerPort, operation string, err error) {
	if logger == nil || operation == "" {
		return
	}
	logger.Error("try.failed", out.LogFields{
		"operation": operation,
		"error":     err.Error(),
	})
}
