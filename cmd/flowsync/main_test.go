package main

import "testing"

func TestGetEnvFallsBack(t *testing.T) {
	t.Setenv("FLOWSYNC_TEST_KEY", "")
	if got := getEnv("FLOWSYNC_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}

	t.Setenv("FLOWSYNC_TEST_KEY", "value")
	if got := getEnv("FLOWSYNC_TEST_KEY", "fallback"); got != "value" {
		t.Fatalf("expected value, got %q", got)
	}
}

func TestParseBoolEnv(t *testing.T) {
	for _, value := range []string{"1", "true", "TRUE", " yes ", "on"} {
		if !parseBoolEnv(value) {
			t.Fatalf("expected %q to parse as true", value)
		}
	}
	for _, value := range []string{"", "0", "false", "off", "nope"} {
		if parseBoolEnv(value) {
			t.Fatalf("expected %q to parse as false", value)
		}
	}
}

func TestMustLoadLocationFallsBackToUTC(t *testing.T) {
	if location := mustLoadLocation("Not/AZone"); location.String() != "UTC" {
		t.Fatalf("expected UTC fallback, got %s", location)
	}
	if location := mustLoadLocation("UTC"); location.String() != "UTC" {
		t.Fatalf("expected UTC, got %s", location)
	}
}
