package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/kanaka-pac/pac-api/pkg/errors"
	"github.com/kanaka-pac/pac-api/pkg/storage"
)

// Upload kinds. Documents land under minutes/, logos under logos/.
const (
	UploadKindDocument = "document"
	UploadKindLogo     = "logo"
)

var documentMIMEs = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"text/plain": {},
}

var logoMIMEs = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
}

// UploadService validates uploads and hands them to the blob store.
type UploadService struct {
	blobs    storage.BlobStore
	maxBytes int64
	logger   *zap.Logger
}

// NewUploadService constructs the service.
func NewUploadService(blobs storage.BlobStore, maxBytes int64, logger *zap.Logger) *UploadService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxBytes <= 0 {
		maxBytes = 10 * 1024 * 1024
	}
	return &UploadService{blobs: blobs, maxBytes: maxBytes, logger: logger}
}

// Save validates the uploaded file's type and size, stores it under a
// timestamp-prefixed sanitized name, and returns the public URL.
func (s *UploadService) Save(ctx context.Context, header *multipart.FileHeader, kind string) (string, error) {
	if header == nil {
		return "", appErrors.Clone(appErrors.ErrValidation, "No file uploaded")
	}
	if header.Size > s.maxBytes {
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("File exceeds the %d byte limit", s.maxBytes))
	}

	contentType := header.Header.Get("Content-Type")
	scope := "minutes"
	allowed := documentMIMEs
	if kind == UploadKindLogo {
		scope = "logos"
		allowed = logoMIMEs
	}
	if _, ok := allowed[contentType]; !ok {
		if kind == UploadKindLogo {
			return "", appErrors.Clone(appErrors.ErrValidation, "Invalid file type. Only PNG and JPEG are allowed.")
		}
		return "", appErrors.Clone(appErrors.ErrValidation, "Invalid file type. Only PDF, DOC, DOCX, and TXT are allowed.")
	}

	file, err := header.Open()
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Upload failed")
	}
	defer file.Close() //nolint:errcheck

	key := fmt.Sprintf("%s/%d-%s", scope, time.Now().UnixMilli(), storage.SafeFilename(header.Filename))
	url, err := s.blobs.Put(ctx, key, io.LimitReader(file, s.maxBytes), header.Size, contentType)
	if err != nil {
		s.logger.Error("store upload", zap.String("key", key), zap.Error(err))
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Upload failed")
	}
	return url, nil
}
