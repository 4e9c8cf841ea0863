package logger

import (
	"fmt"
	"time"
)

type stdOut struct {
	name  string
	now   func() time.Time
	print func(msg string)
}

var _ Logger = &stdOut{}

// NewStdOut prints "<time> : <name> : <LEVEL> : <message>" lines to stdout.
func NewStdOut(name string) Logger {
	return &stdOut{
		name: name,
		now:  time.Now,
		print: func(msg string) {
			fmt.Println(msg)
		},
	}
}

func (p *stdOut) Debugf(format string, args ...any) {
	p.log("DEBUG", format, args...)
}

func (p *stdOut) Infof(format string, args ...any) {
	p.log("INFO", format, args...)
}

func (p *stdOut) Warnf(format string, args ...any) {
	p.log("WARN", format, args...)
}

func (p *stdOut) Errorf(format string, args ...any) {
	p.log("ERROR", format, args...)
}

func (p *stdOut) log(level, format string, args ...any) {
	p.print(fmt.Sprintf(
		"%s : %s : %s : %s",
		p.now().Format("2006-01-02 15:04:05"), p.name, level, fmt.Sprintf(format, args...),
	))
}
