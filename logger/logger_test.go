package logger

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func Test_Noop(t *testing.T) {
	l := &Noop{}

	l.Debugf("debug")
	l.Infof("info")
	l.Warnf("warn")
	l.Errorf("error")
}

func Test_StdOut(t *testing.T) {
	var result []string
	l := &stdOut{
		name: "BestBuyAPI.client",
		now: func() time.Time {
			return time.Date(2024, 3, 1, 10, 20, 30, 0, time.UTC)
		},
		print: func(msg string) {
			result = append(result, msg)
		},
	}

	err := io.ErrClosedPipe

	l.Debugf("%s, %d, %v", "token refreshed", 10, err)
	l.Infof("%s, %d", "Привет Мир!", 20)
	l.Warnf("throttled for %v", 250*time.Millisecond)
	l.Errorf("nil args: %s", nil)

	require.Len(t, result, 4)
	assert.Equal(t, "2024-03-01 10:20:30 : BestBuyAPI.client : DEBUG : token refreshed, 10, io: read/write on closed pipe", result[0])
	assert.Equal(t, "2024-03-01 10:20:30 : BestBuyAPI.client : INFO : Привет Мир!, 20", result[1])
	assert.Equal(t, "2024-03-01 10:20:30 : BestBuyAPI.client : WARN : throttled for 250ms", result[2])
	assert.Equal(t, "2024-03-01 10:20:30 : BestBuyAPI.client : ERROR : nil args: %!s(<nil>)", result[3])
}

func Test_Zap(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewZap(zap.New(core))

	l.Debugf("debug %d", 1)
	l.Infof("info %d", 2)
	l.Warnf("warn %d", 3)
	l.Errorf("error %d", 4)

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	assert.Equal(t, "debug 1", entries[0].Message)
	assert.Equal(t, zap.DebugLevel, entries[0].Level)
	assert.Equal(t, "error 4", entries[3].Message)
	assert.Equal(t, zap.ErrorLevel, entries[3].Level)
}

func Test_Logrus(t *testing.T) {
	var buf bytes.Buffer
	ll := logrus.New()
	ll.SetOutput(&buf)
	ll.SetLevel(logrus.DebugLevel)
	ll.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	l := NewLogrus(ll.WithField("component", "client"))
	l.Debugf("debug %s", "a")
	l.Warnf("warn %s", "b")

	out := buf.String()
	assert.Contains(t, out, `level=debug msg="debug a" component=client`)
	assert.Contains(t, out, `level=warning msg="warn b" component=client`)
}
