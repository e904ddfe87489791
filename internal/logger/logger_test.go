package logger

import "testing"

func TestNew(t *testing.T) {
	log := New()
	if log == nil {
		t.Fatal("expected logger instance")
	}
	log.Info("probe")
}
