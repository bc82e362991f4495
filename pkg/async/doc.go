// Package async provides simple, generic helpers for running computations asynchronously and
// waiting for their completion.
//
// The package is centred around the generic type Future that represents the eventual result of an
// asynchronous operation. A Future can be obtained by calling Async, which starts the supplied
// function in its own goroutine and immediately returns a *Future instance, or by Resolved and
// Failed which return futures that are already settled. The caller can then wait for completion
// with Await, wait with a context using AwaitContext, or poll the state with IsComplete.
//
// Then chains a mapping step onto a Future, and WaitAll / All coordinate several futures at
// once. The rto engine uses these helpers to represent deferred rule outcomes and to validate
// array elements concurrently.
//
// # Usage
//
//	ctx := context.Background()
//	future := async.Async(ctx, "user@example.com", func(ctx context.Context, email string) (bool, error) {
//	    return lookupAvailable(ctx, email)
//	})
//
//	// do other work …
//	ok, err := future.Await()
//
// # Error Handling
//
// Functions return the error produced by the user callback. A panic inside a callback is recovered
// and reported as an error wrapping ErrPanicked, so callers can detect it with errors.Is.
//
// # Performance Considerations
//
// Futures are lightweight wrappers around goroutines and channels. Resolved and Failed do not
// spawn goroutines at all, and Then applies its mapping inline when the source is already settled.
package async
