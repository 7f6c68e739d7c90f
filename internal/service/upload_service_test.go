package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/kanaka-pac/pac-api/pkg/errors"
)

type fakeBlobStore struct {
	key         string
	contentType string
	body        []byte
}

func (f *fakeBlobStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.key = key
	f.contentType = contentType
	f.body = body
	return "/uploads/" + key, nil
}

func (f *fakeBlobStore) Delete(ctx context.Context, key string) error { return nil }

func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() }) //nolint:errcheck
	return form.File["file"][0]
}

func TestUploadDocument(t *testing.T) {
	blobs := &fakeBlobStore{}
	svc := NewUploadService(blobs, 0, nil)

	header := fileHeader(t, "March Minutes.pdf", "application/pdf", []byte("%PDF-1.4 fake"))
	url, err := svc.Save(context.Background(), header, UploadKindDocument)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/minutes/"))
	assert.True(t, strings.HasSuffix(blobs.key, "-MarchMinutes.pdf"))
	assert.Equal(t, "application/pdf", blobs.contentType)
	assert.Equal(t, []byte("%PDF-1.4 fake"), blobs.body)
}

func TestUploadLogo(t *testing.T) {
	blobs := &fakeBlobStore{}
	svc := NewUploadService(blobs, 0, nil)

	header := fileHeader(t, "logo.png", "image/png", []byte("fake png"))
	url, err := svc.Save(context.Background(), header, UploadKindLogo)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/logos/"))
}

func TestUploadRejectsDisallowedDocumentType(t *testing.T) {
	svc := NewUploadService(&fakeBlobStore{}, 0, nil)

	header := fileHeader(t, "virus.exe", "application/x-msdownload", []byte("nope"))
	_, err := svc.Save(context.Background(), header, UploadKindDocument)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, "Invalid file type. Only PDF, DOC, DOCX, and TXT are allowed.", appErr.Message)
	assert.Equal(t, 400, appErr.Status)
}

func TestUploadRejectsDisallowedLogoType(t *testing.T) {
	svc := NewUploadService(&fakeBlobStore{}, 0, nil)

	header := fileHeader(t, "logo.gif", "image/gif", []byte("nope"))
	_, err := svc.Save(context.Background(), header, UploadKindLogo)
	require.Error(t, err)
	assert.Equal(t, "Invalid file type. Only PNG and JPEG are allowed.", appErrors.FromError(err).Message)
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc := NewUploadService(&fakeBlobStore{}, 8, nil)

	header := fileHeader(t, "big.pdf", "application/pdf", []byte("more than eight bytes"))
	_, err := svc.Save(context.Background(), header, UploadKindDocument)
	require.Error(t, err)
	assert.Equal(t, 400, appErrors.FromError(err).Status)
}

func TestUploadRejectsNilHeader(t *testing.T) {
	svc := NewUploadService(&fakeBlobStore{}, 0, nil)

	_, err := svc.Save(context.Background(), nil, UploadKindDocument)
	require.Error(t, err)
	assert.Equal(t, "No file uploaded", appErrors.FromError(err).Message)
}
