package config

import (
	"os"
	"runtime"
	"strconv"
	"sync"
)

// ThreadLimitEnv is the environment variable that upper-bounds the worker
// count, honoured for compatibility with OpenMP-style deployments.
const ThreadLimitEnv = "OMP_THREAD_LIMIT"

var (
	threadsOnce sync.Once
	threads     int
)

// Threads returns the process-default worker count for batch calls:
// available cores minus one, floored at one, intersected with any
// OMP_THREAD_LIMIT. The value is computed once at first use and is stable
// for the life of the process.
func Threads() int {
	threadsOnce.Do(func() {
		threads = computeThreads(runtime.NumCPU(), os.Getenv(ThreadLimitEnv))
	})
	return threads
}

func computeThreads(numCPU int, limitEnv string) int {
	n := numCPU - 1
	if n < 1 {
		n = 1
	}
	if limitEnv != "" {
		if limit, err := strconv.Atoi(limitEnv); err == nil && limit > 0 && limit < n {
			n = limit
		}
	}
	return n
}
