package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewWithOutput_JSON(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := NewWithOutput(buf, "debug", "json")
	logger.WithField("event_id", "e1").Debug("hello")

	out := buf.String()
	if !strings.Contains(out, `"event_id":"e1"`) {
		t.Fatalf("expected json field in output, got %q", out)
	}
}

func TestNewWithOutput_UnknownLevel(t *testing.T) {
	t.Parallel()

	logger := NewWithOutput(&bytes.Buffer{}, "chatty", "text")
	if logger.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected info level, got %s", logger.GetLevel())
	}
}
