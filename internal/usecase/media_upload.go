package usecase

import (
	"context"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"github.com/riskibarqy/league-portal/internal/domain/media"
)

// UploadInput is a single file taken from a multipart form.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

func (in UploadInput) validate() error {
	switch {
	case in.Body == nil:
		return invalidInput("No file provided")
	case in.Size == 0:
		return invalidInput("Empty file")
	}
	return nil
}

// objectKey builds "<prefix><unix-millis>-<slug>.<ext>" from a client filename.
func objectKey(prefix, filename string, now time.Time) string {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	ext := strings.ToLower(path.Ext(base))
	name := slug.Make(strings.TrimSuffix(base, path.Ext(base)))
	if name == "" {
		name = "upload"
	}
	ext = strings.Map(func(r rune) rune {
		if r == '.' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, ext)
	if ext == "." {
		ext = ""
	}
	return prefix + strconv.FormatInt(now.UnixMilli(), 10) + "-" + name + ext
}

func putObject(ctx context.Context, store media.ObjectStore, key string, in UploadInput) (string, error) {
	contentType := strings.TrimSpace(in.ContentType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	url, err := store.Put(ctx, media.Object{
		Key:         key,
		ContentType: contentType,
		Size:        in.Size,
		Body:        in.Body,
	})
	if err != nil {
		return "", fmt.Errorf("upload object %s: %w", key, err)
	}
	return url, nil
}
