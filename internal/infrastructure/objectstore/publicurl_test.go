package objectstore

import "testing"

func TestPublicURL(t *testing.T) {
	got := PublicURL("https://acc.r2.cloudflarestorage.com/", "gallery", "performers/1700000000000-ravi kumar.png")
	want := "https://acc.r2.cloudflarestorage.com/gallery/performers/1700000000000-ravi%20kumar.png"
	if got != want {
		t.Fatalf("unexpected url:\nwant: %s\ngot:  %s", want, got)
	}
}

func TestKeyFromURL(t *testing.T) {
	cases := []struct {
		url    string
		key    string
		wantOK bool
	}{
		{"https://cdn.example/gallery/1700000000000-final.jpg", "1700000000000-final.jpg", true},
		{"https://cdn.example/gallery/performers/1-a%20b.png?v=2", "performers/1-a b.png", true},
		{"https://elsewhere.example/photos/1-final.jpg", "", false},
		{"https://cdn.example/gallery/", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		key, ok := KeyFromURL(tc.url, "gallery")
		if ok != tc.wantOK || key != tc.key {
			t.Fatalf("KeyFromURL(%q) = (%q, %v), want (%q, %v)", tc.url, key, ok, tc.key, tc.wantOK)
		}
	}
}

func TestKeyFromURL_RoundTrip(t *testing.T) {
	u := PublicURL("http://objects.local", "gallery", "performers/1-mvp.webp")
	key, ok := KeyFromURL(u, "gallery")
	if !ok || key != "performers/1-mvp.webp" {
		t.Fatalf("round trip failed: %q %v", key, ok)
	}
}
