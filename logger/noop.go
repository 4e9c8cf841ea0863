package logger

// Noop discards every message. It is the client's default logger.
type Noop struct {
}

var _ Logger = &Noop{}

func (n Noop) Debugf(_ string, _ ...any) {
}

func (n Noop) Infof(_ string, _ ...any) {
}

func (n Noop) Warnf(_ string, _ ...any) {
}

func (n Noop) Errorf(_ string, _ ...any) {
}
