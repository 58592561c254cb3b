// AngelaMos | 2026
// avatar_test.go

package avatar

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/templates/contacts-api/internal/config"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploaderLocal(t *testing.T) {
	root := t.TempDir()
	tempDir := filepath.Join(root, "temp")
	publicDir := filepath.Join(root, "public", "avatars")

	store, err := NewLocalStore(publicDir, "avatars")
	require.NoError(t, err)

	up, err := NewUploader(store, tempDir, 250)
	require.NoError(t, err)

	url, err := up.Upload(
		context.Background(),
		"user-1",
		"me.png",
		bytes.NewReader(pngBytes(t, 640, 480)),
	)
	require.NoError(t, err)
	assert.Equal(t, "avatars/user-1_me.png", url)

	img, err := imaging.Open(filepath.Join(publicDir, "user-1_me.png"))
	require.NoError(t, err)
	assert.Equal(t, 250, img.Bounds().Dx())
	assert.Equal(t, 250, img.Bounds().Dy())

	leftovers, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestUploaderStripsDirectories(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(filepath.Join(root, "public"), "avatars")
	require.NoError(t, err)

	up, err := NewUploader(store, filepath.Join(root, "temp"), 32)
	require.NoError(t, err)

	url, err := up.Upload(
		context.Background(),
		"u",
		"../../etc/pic.png",
		bytes.NewReader(pngBytes(t, 8, 8)),
	)
	require.NoError(t, err)
	assert.Equal(t, "avatars/u_pic.png", url)
}

func TestLocalStoreEscapesURL(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root, "avatars")
	require.NoError(t, err)

	local := filepath.Join(t.TempDir(), "staged.png")
	require.NoError(t, os.WriteFile(local, pngBytes(t, 4, 4), 0o600))

	got, err := store.Put(context.Background(), "u_my pic#1.png", local)
	require.NoError(t, err)
	assert.Equal(t, "avatars/u_my%20pic%231.png", got)

	_, err = os.Stat(filepath.Join(root, "u_my pic#1.png"))
	assert.NoError(t, err)
}

func TestUploaderRejectsNonImage(t *testing.T) {
	root := t.TempDir()
	tempDir := filepath.Join(root, "temp")
	store, err := NewLocalStore(filepath.Join(root, "public"), "avatars")
	require.NoError(t, err)

	up, err := NewUploader(store, tempDir, 250)
	require.NoError(t, err)

	_, err = up.Upload(
		context.Background(),
		"u",
		"notes.png",
		strings.NewReader("definitely not a png"),
	)
	assert.ErrorIs(t, err, ErrUnsupportedImage)

	leftovers, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestUploaderMissingFile(t *testing.T) {
	up, err := NewUploader(nil, t.TempDir(), 250)
	require.NoError(t, err)

	_, err = up.Upload(context.Background(), "u", "", nil)
	assert.ErrorIs(t, err, ErrMissingFile)
}

type fakeS3 struct {
	bucket string
	key    string
	body   []byte
	ctype  string
	err    error
}

func (f *fakeS3) PutObject(
	_ context.Context,
	in *s3.PutObjectInput,
	_ ...func(*s3.Options),
) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.bucket = *in.Bucket
	f.key = *in.Key
	if in.ContentType != nil {
		f.ctype = *in.ContentType
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(in.Body); err != nil {
		return nil, err
	}
	f.body = buf.Bytes()
	return &s3.PutObjectOutput{}, nil
}

func TestS3StorePut(t *testing.T) {
	api := &fakeS3{}
	store := &S3Store{
		client:    api,
		bucket:    "avatars",
		publicURL: "https://cdn.example.com",
	}

	local := filepath.Join(t.TempDir(), "staged.png")
	require.NoError(t, os.WriteFile(local, pngBytes(t, 4, 4), 0o600))

	url, err := store.Put(context.Background(), "u_me.png", local)
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/u_me.png", url)
	assert.Equal(t, "avatars", api.bucket)
	assert.Equal(t, "u_me.png", api.key)
	assert.Equal(t, "image/png", api.ctype)
	assert.NotEmpty(t, api.body)

	_, err = os.Stat(local)
	assert.True(t, os.IsNotExist(err))
}

func TestS3StoreEscapesURL(t *testing.T) {
	api := &fakeS3{}
	store := &S3Store{
		client:    api,
		bucket:    "avatars",
		publicURL: "https://cdn.example.com",
	}

	local := filepath.Join(t.TempDir(), "staged.png")
	require.NoError(t, os.WriteFile(local, pngBytes(t, 4, 4), 0o600))

	got, err := store.Put(context.Background(), "u_my pic#1.png", local)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/u_my%20pic%231.png", got)
	assert.Equal(t, "u_my pic#1.png", api.key)
}

func TestS3StorePutError(t *testing.T) {
	store := &S3Store{
		client:    &fakeS3{err: errors.New("boom")},
		bucket:    "avatars",
		publicURL: "https://cdn.example.com",
	}

	local := filepath.Join(t.TempDir(), "staged.png")
	require.NoError(t, os.WriteFile(local, []byte("x"), 0o600))

	_, err := store.Put(context.Background(), "u_me.png", local)
	assert.Error(t, err)
}

func TestPublicBaseURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com",
		publicBaseURL(config.S3Config{PublicURL: "https://cdn.example.com/"}))
	assert.Equal(t, "http://localhost:9000/avatars",
		publicBaseURL(config.S3Config{Endpoint: "http://localhost:9000", Bucket: "avatars"}))
	assert.Equal(t, "https://avatars.s3.eu-west-1.amazonaws.com",
		publicBaseURL(config.S3Config{Bucket: "avatars", Region: "eu-west-1"}))
}
