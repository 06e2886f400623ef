package utils

import (
	"testing"
	"time"
)

func TestGetEnvAsString(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	if got := GetEnvAsString("TEST_STRING", "fallback"); got != "value" {
		t.Errorf("got %q", got)
	}
	if got := GetEnvAsString("TEST_STRING_UNSET", "fallback"); got != "fallback" {
		t.Errorf("got %q", got)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if got := GetEnvAsInt("TEST_INT", 7); got != 42 {
		t.Errorf("got %d", got)
	}
	t.Setenv("TEST_INT", "not a number")
	if got := GetEnvAsInt("TEST_INT", 7); got != 7 {
		t.Errorf("malformed value should fall back, got %d", got)
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "90s")
	if got := GetEnvAsDuration("TEST_DURATION", time.Minute); got != 90*time.Second {
		t.Errorf("got %v", got)
	}
	t.Setenv("TEST_DURATION", "soon")
	if got := GetEnvAsDuration("TEST_DURATION", time.Minute); got != time.Minute {
		t.Errorf("malformed value should fall back, got %v", got)
	}
}
