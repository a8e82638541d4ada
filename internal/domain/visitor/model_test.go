package visitor

import (
	"strings"
	"testing"
)

func TestClassifyDevice(t *testing.T) {
	cases := []struct {
		ua   string
		want DeviceType
	}{
		{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Mobile/15E148", DeviceMobile},
		{"Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X)", DeviceTablet},
		{"Mozilla/5.0 (Linux; Android 13; SM-X200) Tablet", DeviceTablet},
		{"Mozilla/5.0 (Linux; Android 13; Tablet) Mobile Safari", DeviceMobile},
		{"Mozilla/5.0 (Windows NT 10.0; Win64; x64)", DeviceDesktop},
		{"", DeviceDesktop},
	}
	for _, tc := range cases {
		if got := ClassifyDevice(tc.ua); got != tc.want {
			t.Fatalf("ClassifyDevice(%q) = %s, want %s", tc.ua, got, tc.want)
		}
	}
}

func TestTruncateUserAgent(t *testing.T) {
	long := strings.Repeat("a", 600)
	if got := TruncateUserAgent(long); len(got) != MaxUserAgentLen {
		t.Fatalf("expected %d chars, got %d", MaxUserAgentLen, len(got))
	}
	if got := TruncateUserAgent("short"); got != "short" {
		t.Fatalf("expected short ua untouched, got %q", got)
	}
}

func TestNormalizeSessionID(t *testing.T) {
	if got := NormalizeSessionID("  s-1  "); got == nil || *got != "s-1" {
		t.Fatalf("expected trimmed session id, got %v", got)
	}
	if got := NormalizeSessionID("   "); got != nil {
		t.Fatalf("expected nil for blank session id, got %q", *got)
	}
	if got := NormalizeSessionID(strings.Repeat("x", MaxSessionIDLen+1)); got != nil {
		t.Fatalf("expected nil for oversized session id")
	}
}
