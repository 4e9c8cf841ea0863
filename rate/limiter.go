package rate

// Limiter controls the request rate to the BestBuy API.
//
// Limit is called before every outbound call, including the credential
// exchange, and blocks the calling goroutine for as long as needed to keep
// the configured spacing. Mark records that a request has just been handed
// to the transport; the spacing is measured from the last Mark.
//
// Example usage:
//
//	l := rate.NewIntervalLimiter(time.Second)
//	l.Limit()
//	l.Mark()
//	send(req)
//
// Implementations must only suspend the calling goroutine; other limiters
// and other goroutines are never blocked.
type Limiter interface {
	// Limit blocks until the next request may be sent.
	Limit()

	// Mark records that a request is being dispatched now.
	Mark()
}
