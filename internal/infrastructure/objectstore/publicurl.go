// Package objectstore holds the media.ObjectStore implementations and the URL layout
// they share: <public base>/<bucket>/<key>.
package objectstore

import (
	"net/url"
	"strings"
)

// PublicURL joins base, bucket and key, escaping each key segment.
func PublicURL(base, bucket, key string) string {
	segments := strings.Split(strings.TrimLeft(key, "/"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.TrimRight(base, "/") + "/" + bucket + "/" + strings.Join(segments, "/")
}

// KeyFromURL returns the object key following the first "/<bucket>/" path segment.
// URLs that do not contain the segment are not ours.
func KeyFromURL(publicURL, bucket string) (string, bool) {
	if strings.TrimSpace(bucket) == "" {
		return "", false
	}
	raw := strings.TrimSpace(publicURL)
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		raw = raw[:i]
	}
	_, after, found := strings.Cut(raw, "/"+bucket+"/")
	if !found || after == "" {
		return "", false
	}
	key, err := url.PathUnescape(after)
	if err != nil || key == "" {
		return "", false
	}
	return key, true
}
