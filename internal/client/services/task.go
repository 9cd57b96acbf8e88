package services

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/foodcourt/internal/client/security"
)

// TaskState is a read snapshot of a remote-backed fetch: the data, whether a
// fetch is running, and the sanitized error message of the last failure
// ("" when none).
type TaskState[T any] struct {
	Data    T
	Loading bool
	Err     string
}

// Task wraps a no-argument remote operation as observable
// {data, loading, error} state with an explicit refetch entry point.
//
// There is no cancellation: a slow call completes later and applies its
// result whenever it lands, even if the caller has moved on. This mirrors
// the screen-level fetch behavior and is a known gap, not a guarantee.
type Task[T any] struct {
	fn        func(ctx context.Context) (T, error)
	sanitizer *security.Sanitizer

	mu      sync.Mutex
	data    T
	loading bool
	errMsg  string
	subs    map[int]func()
	nextSub int
}

// NewTask wraps fn. The fetch does not start until Fetch is called.
func NewTask[T any](fn func(ctx context.Context) (T, error), sanitizer *security.Sanitizer) *Task[T] {
	return &Task[T]{fn: fn, sanitizer: sanitizer, subs: make(map[int]func())}
}

// State returns the current snapshot.
func (t *Task[T]) State() TaskState[T] {
	t.mu.Lock()
	defer t.mu.Unlock()
	return TaskState[T]{Data: t.data, Loading: t.loading, Err: t.errMsg}
}

// Subscribe registers fn to run after every state change.
func (t *Task[T]) Subscribe(fn func()) func() {
	t.mu.Lock()
	id := t.nextSub
	t.nextSub++
	t.subs[id] = fn
	t.mu.Unlock()
	return func() {
		t.mu.Lock()
		delete(t.subs, id)
		t.mu.Unlock()
	}
}

func (t *Task[T]) notify() {
	t.mu.Lock()
	fns := make([]func(), 0, len(t.subs))
	for _, fn := range t.subs {
		fns = append(fns, fn)
	}
	t.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Fetch runs the operation and stores either its result or the sanitized
// message of its failure. Callers wanting a background fetch run it in a
// goroutine. Refetch is the same entry point run again.
func (t *Task[T]) Fetch(ctx context.Context) {
	t.mu.Lock()
	t.loading = true
	t.errMsg = ""
	t.mu.Unlock()
	t.notify()

	data, err := t.fn(ctx)

	t.mu.Lock()
	if err != nil {
		// Service errors already carry a user-safe message; everything else
		// goes through the sanitizer exactly once.
		var re *RemoteError
		if errors.As(err, &re) {
			t.errMsg = re.Message
		} else {
			t.errMsg = t.sanitizer.Sanitize(ctx, err)
		}
	} else {
		t.data = data
	}
	t.loading = false
	t.mu.Unlock()
	t.notify()
}
