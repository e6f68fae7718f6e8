package logger

import "testing"

func TestInitReplacesNopLogger(t *testing.T) {
	if Log == nil {
		t.Fatal("Log is nil before Init; packages must be able to log unconditionally")
	}

	before := Log
	Init()
	if Log == nil {
		t.Fatal("Log is nil after Init")
	}
	if Log == before {
		t.Error("Init left the nop logger in place with no build error")
	}

	// Must be safe to call through immediately.
	Log.Debug("logger initialized")
}
