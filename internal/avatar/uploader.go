// AngelaMos | 2026
// uploader.go

package avatar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"go.opentelemetry.io/otel/attribute"

	"github.com/carterperez-dev/templates/contacts-api/internal/core"
)

var (
	ErrMissingFile      = errors.New("missing file")
	ErrUnsupportedImage = errors.New("unsupported image")
)

type Uploader struct {
	store   Store
	tempDir string
	size    int
}

func NewUploader(store Store, tempDir string, size int) (*Uploader, error) {
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	return &Uploader{
		store:   store,
		tempDir: tempDir,
		size:    size,
	}, nil
}

// Upload stages the image in the temp dir, resizes it to a size x size
// square and hands it to the store as "<userID>_<originalName>". The staged
// file never outlives the call.
func (u *Uploader) Upload(
	ctx context.Context,
	userID, originalName string,
	src io.Reader,
) (string, error) {
	if src == nil || originalName == "" {
		return "", ErrMissingFile
	}

	ctx, span := core.StartSpan(ctx, "avatar.upload",
		attribute.String("user.id", userID),
	)
	defer span.End()

	base := filepath.Base(originalName)
	staged, err := u.stage(base, src)
	if err != nil {
		return "", err
	}
	defer os.Remove(staged) //nolint:errcheck // gone already when the store moved it

	img, err := imaging.Open(staged)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	resized := imaging.Resize(img, u.size, u.size, imaging.Lanczos)
	if err := imaging.Save(resized, staged); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	url, err := u.store.Put(ctx, userID+"_"+base, staged)
	if err != nil {
		core.SetSpanError(ctx, err)
		return "", err
	}
	return url, nil
}

func (u *Uploader) stage(name string, src io.Reader) (string, error) {
	f, err := os.CreateTemp(u.tempDir, "upload-*"+filepath.Ext(name))
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if _, err := io.Copy(f, src); err != nil {
		f.Close()           //nolint:errcheck,gosec // already failing
		os.Remove(f.Name()) //nolint:errcheck,gosec // already failing
		return "", fmt.Errorf("stage upload: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(f.Name()) //nolint:errcheck,gosec // already failing
		return "", fmt.Errorf("stage upload: %w", err)
	}

	return f.Name(), nil
}
