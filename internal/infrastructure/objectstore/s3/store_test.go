package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/riskibarqy/league-portal/internal/domain/media"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

type fakeObjectAPI struct {
	put       *awss3.PutObjectInput
	putBody   []byte
	deleted   []string
	deleteErr error
}

func (f *fakeObjectAPI) PutObject(_ context.Context, in *awss3.PutObjectInput, _ ...func(*awss3.Options)) (*awss3.PutObjectOutput, error) {
	f.put = in
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.putBody = body
	return &awss3.PutObjectOutput{}, nil
}

func (f *fakeObjectAPI) DeleteObject(_ context.Context, in *awss3.DeleteObjectInput, _ ...func(*awss3.Options)) (*awss3.DeleteObjectOutput, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	f.deleted = append(f.deleted, aws.ToString(in.Key))
	return &awss3.DeleteObjectOutput{}, nil
}

func TestStore_PutReturnsPublicURL(t *testing.T) {
	api := &fakeObjectAPI{}
	store := newStore(api, "gallery", "https://cdn.example", 0, logging.NewNop())

	url, err := store.Put(context.Background(), media.Object{
		Key:         "1700000000000-final.jpg",
		ContentType: "image/jpeg",
		Body:        bytes.NewReader([]byte("jpeg-bytes")),
	})
	require.NoError(t, err)
	require.Equal(t, "https://cdn.example/gallery/1700000000000-final.jpg", url)
	require.Equal(t, "gallery", aws.ToString(api.put.Bucket))
	require.Equal(t, int64(10), aws.ToInt64(api.put.ContentLength))
	require.Equal(t, "jpeg-bytes", string(api.putBody))
}

func TestStore_PutRejectsOversizedBody(t *testing.T) {
	api := &fakeObjectAPI{}
	store := newStore(api, "gallery", "https://cdn.example", 4, logging.NewNop())

	_, err := store.Put(context.Background(), media.Object{Key: "big.png", Body: strings.NewReader("12345")})
	require.Error(t, err)
	require.Nil(t, api.put)
}

func TestStore_DeleteWrapsError(t *testing.T) {
	api := &fakeObjectAPI{deleteErr: errors.New("AccessDenied")}
	store := newStore(api, "gallery", "https://cdn.example", 0, logging.NewNop())

	err := store.Delete(context.Background(), "1-a.png")
	require.Error(t, err)
	require.Contains(t, err.Error(), "gallery/1-a.png")
	require.Contains(t, err.Error(), "AccessDenied")
}

func TestStore_KeyFromURLUsesBucket(t *testing.T) {
	store := newStore(&fakeObjectAPI{}, "gallery", "https://cdn.example", 0, logging.NewNop())

	key, ok := store.KeyFromURL("https://cdn.example/gallery/performers/1-a.png")
	require.True(t, ok)
	require.Equal(t, "performers/1-a.png", key)

	_, ok = store.KeyFromURL("https://other.example/photos/1-a.png")
	require.False(t, ok)
}
