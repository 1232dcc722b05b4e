package logger

import "testing"

func TestNewZapLogger(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		wantErr bool
	}{
		{"json info", "info", "json", false},
		{"console debug", "DEBUG", "console", false},
		{"warn", "warn", "json", false},
		{"unknown level", "verbose", "json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewZapLogger(tt.level, tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewZapLogger() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && l == nil {
				t.Fatal("expected a logger")
			}
		})
	}
}

func TestNopLoggerImplementsLogger(t *testing.T) {
	var l Logger = NewNopLogger()
	l.Info("room %d created", 1)
	l.Warn("slow query")
	l.Error("failed: %v", "boom")
	l.Debug("debug")
}
