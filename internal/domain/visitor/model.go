package visitor

import (
	"errors"
	"strings"
	"time"
)

type DeviceType string

const (
	DeviceMobile  DeviceType = "mobile"
	DeviceTablet  DeviceType = "tablet"
	DeviceDesktop DeviceType = "desktop"
)

const (
	Unknown         = "Unknown"
	MaxUserAgentLen = 500
	MaxSessionIDLen = 128
)

// ErrSessionRecorded is returned by Repository.Create when the session already has a row.
var ErrSessionRecorded = errors.New("visit already recorded for session")

// Log is one visit, written at most once per browser session.
type Log struct {
	ID         string
	SessionID  *string
	Page       string
	Referrer   *string
	UserAgent  string
	State      string
	City       string
	Country    string
	DeviceType DeviceType
	CreatedAt  time.Time
}

// Location is the coarse geolocation of a client IP.
type Location struct {
	State   string
	City    string
	Country string
}

// ClassifyDevice maps a user agent to a device bucket. "mobile" wins over "tablet"/"ipad".
func ClassifyDevice(userAgent string) DeviceType {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "mobile"):
		return DeviceMobile
	case strings.Contains(ua, "tablet"), strings.Contains(ua, "ipad"):
		return DeviceTablet
	default:
		return DeviceDesktop
	}
}

// NormalizeSessionID trims raw and drops values that are empty or too long to be a client session id.
func NormalizeSessionID(raw string) *string {
	v := strings.TrimSpace(raw)
	if v == "" || len(v) > MaxSessionIDLen {
		return nil
	}
	return &v
}

// TruncateUserAgent cuts ua to MaxUserAgentLen runes.
func TruncateUserAgent(ua string) string {
	runes := []rune(ua)
	if len(runes) <= MaxUserAgentLen {
		return ua
	}
	return string(runes[:MaxUserAgentLen])
}
