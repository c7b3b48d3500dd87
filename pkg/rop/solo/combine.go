package solo

import (
	"context"
	"fmt"

	"github.com/ib-77/outcome/pkg/rop"
)

// MultipleErrorsCode is the code of the aggregated error built by CombineAll.
const MultipleErrorsCode = "MULTIPLE_ERRORS"

// Combine joins results in argument order. The first failure wins and is
// returned unchanged; otherwise the values come back in the same order.
func Combine[T any](_ context.Context, inputs ...rop.Result[T]) rop.Result[[]T] {
	values := make([]T, 0, len(inputs))
	for _, in := range inputs {
		if in.IsFailure() {
			return rop.FailFrom[T, []T](in)
		}
		values = append(values, in.Value())
	}
	return rop.Success(values)
}

// CombineAll inspects every result. If any failed, the values are dropped and
// a single aggregated error is returned, see Aggregate.
func CombineAll[T any](_ context.Context, inputs ...rop.Result[T]) rop.Result[[]T] {
	values := make([]T, 0, len(inputs))
	var errs []rop.Error
	for _, in := range inputs {
		if in.IsFailure() {
			errs = append(errs, in.Err())
			continue
		}
		values = append(values, in.Value())
	}
	if len(errs) > 0 {
		return rop.Fail[[]T](Aggregate(errs...))
	}
	return rop.Success(values)
}

// Aggregate folds errs into one error. The category is always Validation,
// whatever the categories of errs: several failures are reported as input to
// fix. The errors extension lists the summaries in order, count their number.
func Aggregate(errs ...rop.Error) rop.Error {
	summaries := make([]rop.ErrorSummary, 0, len(errs))
	for _, e := range errs {
		summaries = append(summaries, e.Summary())
	}
	msg := fmt.Sprintf("%d errors occurred", len(errs))
	if len(errs) == 1 {
		msg = "1 error occurred"
	}
	return rop.NewError(rop.CategoryValidation, 0, MultipleErrorsCode, msg,
		rop.Ext("errors", summaries, "count", len(errs)))
}

// ValidateAll runs every validator against input in order. With breakOnError
// the first failure is returned as is; otherwise all failures are collected
// and, if there is more than one, aggregated.
func ValidateAll[T any](
	ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	validators ...func(ctx context.Context, in T) rop.Result[T]) rop.Result[T] {

	if input.IsFailure() || len(validators) == 0 {
		return input
	}

	var errs []rop.Error
	for _, validate := range validators {
		res := validate(ctx, input.Value())
		if res.IsSuccess() {
			continue
		}
		if breakOnError {
			return res
		}
		errs = append(errs, res.Err())
	}

	switch len(errs) {
	case 0:
		return input
	case 1:
		return rop.Fail[T](errs[0])
	default:
		return rop.Fail[T](Aggregate(errs...))
	}
}
