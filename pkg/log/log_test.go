package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	t.Run("debug disabled", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewWithOutput(&buf, false, false)
		l.Debugf("decoded %s", "NOP")
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
		l.Infof("loaded %d bytes", 32768)
		if !strings.Contains(buf.String(), "loaded 32768 bytes") {
			t.Errorf("expected info message, got %q", buf.String())
		}
	})
	t.Run("debug enabled", func(t *testing.T) {
		var buf bytes.Buffer
		l := NewWithOutput(&buf, true, false)
		l.Debugf("decoded %s", "NOP")
		if !strings.Contains(buf.String(), "decoded NOP") {
			t.Errorf("expected debug message, got %q", buf.String())
		}
	})
	t.Run("null", func(t *testing.T) {
		l := NewNullLogger()
		l.Infof("ignored")
		l.Errorf("ignored")
		l.Debugf("ignored")
	})
}
