package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLoggerClient_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{Debug, zapcore.DebugLevel},
		{Info, zapcore.InfoLevel},
		{Warning, zapcore.WarnLevel},
		{Error, zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			l, err := NewLoggerClient(Config{Level: tt.level, ServiceName: "test"})
			if err != nil {
				t.Fatalf("NewLoggerClient returned error: %v", err)
			}
			if !l.Core().Enabled(tt.want) {
				t.Errorf("expected level %v to be enabled", tt.want)
			}
			if tt.want > zapcore.DebugLevel && l.Core().Enabled(tt.want-1) {
				t.Errorf("expected level %v to be disabled", tt.want-1)
			}
		})
	}
}
