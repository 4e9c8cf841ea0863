package rate

type NoopLimiter struct {
}

var _ Limiter = &NoopLimiter{}

func (n NoopLimiter) Limit() {
}

func (n NoopLimiter) Mark() {
}
