package retry

// Retry runs an operation repeatedly with a configurable policy.
//
// The BB-Oracle client itself never retries: a failed credential exchange
// or a failed dispatch is returned to the caller untouched. Callers that
// want retries layer them on top, for example:
//
//	r := retry.NewExponentialRetry(
//	    retry.WithInitialDuration(500*time.Millisecond),
//	    retry.WithLogger(myLogger),
//	)
//
//	var usage types.ResponseBody
//	err := r.Do(3, "usage", func(attempt int) (error, retry.ExitStrategy) {
//	    var err error
//	    usage, err = client.Usage(ctx)
//	    return err, retry.Classify(err)
//	})
//
// The RetriableFn function receives the current attempt number (0-based) and returns
// an error and an ExitStrategy. The ExitStrategy determines whether to continue
// retrying (Continue) or stop immediately (StopNow), regardless of remaining attempts.
//
// NOTE: if attempts is 0, the fn is never called.
type Retry interface {
	Do(attempts int, fnName string, fn RetriableFn) error
}

type RetriableFn func(attempt int) (error, ExitStrategy)

type ExitStrategy bool

var StopNow ExitStrategy = true
var Continue ExitStrategy = false
