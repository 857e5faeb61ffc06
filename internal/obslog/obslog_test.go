package obslog_test

import (
	"testing"

	"github.com/pthm/qualra/internal/obslog"
)

func TestNilLoggerIsSafe(t *testing.T) {
	var l *obslog.Logger
	l.Debugf("x=%d", 1)
	l.Infof("x=%d", 1)
	l.Warnf("x=%d", 1)
	if err := l.Sync(); err != nil {
		t.Errorf("Sync on nil logger returned %v, want nil", err)
	}
}

func TestNoopLoggerIsSafe(t *testing.T) {
	l := obslog.Noop()
	l.Debugf("x=%d", 1)
	l.Infof("x=%d", 1)
	l.Warnf("x=%d", 1)
	_ = l.Sync()
}

func TestNewBuildsUsableLogger(t *testing.T) {
	l, err := obslog.New(true)
	if err != nil {
		t.Fatalf("New(true): %v", err)
	}
	l.Infof("hello %s", "world")

	l2, err := obslog.New(false)
	if err != nil {
		t.Fatalf("New(false): %v", err)
	}
	l2.Infof("hello %s", "world")
}
