package core

import "context"

type optionKey string

const (
	processOptionKey optionKey = "process_options"
	workerOptionKey  optionKey = "worker_options"
)

// DefaultWorkers is used when no worker count was set on the context.
const DefaultWorkers = 1

type WorkerOptions struct {
	MaxCount int
}

type ProcessOptions struct {
	// ProcessRemaining reports items left after cancellation as failures
	// instead of silently dropping them.
	ProcessRemaining bool
}

func WithProcessOptions(ctx context.Context, processRemaining bool) context.Context {
	return context.WithValue(ctx, processOptionKey, ProcessOptions{ProcessRemaining: processRemaining})
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, workerOptionKey, WorkerOptions{MaxCount: maxWorkers})
}

// GetWorkerMaxCount returns the worker count set on ctx, or defaultMaxWorkers.
// Non-positive counts are treated as unset.
func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	if options, ok := ctx.Value(workerOptionKey).(WorkerOptions); ok && options.MaxCount > 0 {
		return options.MaxCount
	}
	return defaultMaxWorkers
}

func IsProcessRemainingEnabled(ctx context.Context, defaultProcessRemaining bool) bool {
	if options, ok := ctx.Value(processOptionKey).(ProcessOptions); ok {
		return options.ProcessRemaining
	}
	return defaultProcessRemaining
}
