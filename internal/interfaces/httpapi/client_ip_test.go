package httpapi

import (
	"net/http/httptest"
	"testing"
)

func TestResolveClientIP(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{name: "cloudflare header wins", headers: map[string]string{"CF-Connecting-IP": "49.36.10.1", "X-Forwarded-For": "10.0.0.1"}, remote: "127.0.0.1:5000", want: "49.36.10.1"},
		{name: "first forwarded hop", headers: map[string]string{"X-Forwarded-For": "103.21.4.5, 10.0.0.1"}, remote: "127.0.0.1:5000", want: "103.21.4.5"},
		{name: "invalid header falls through", headers: map[string]string{"X-Real-IP": "not-an-ip"}, remote: "192.0.2.10:443", want: "192.0.2.10"},
		{name: "forwarded hop with port", headers: map[string]string{"X-Forwarded-For": "103.21.4.5:8443"}, remote: "127.0.0.1:5000", want: "103.21.4.5"},
		{name: "mapped ipv6 socket", remote: "[::ffff:49.36.10.1]:5000", want: "49.36.10.1"},
		{name: "ipv6 socket", remote: "[2401:4900::1]:443", want: "2401:4900::1"},
		{name: "nothing usable", remote: "pipe", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/v1/visits", nil)
			req.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			if got := resolveClientIP(req); got != tc.want {
				t.Fatalf("resolveClientIP()=%q want=%q", got, tc.want)
			}
		})
	}
}
