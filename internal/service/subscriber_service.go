package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kanaka-pac/pac-api/internal/models"
	"github.com/kanaka-pac/pac-api/internal/store"
	appErrors "github.com/kanaka-pac/pac-api/pkg/errors"
	"github.com/kanaka-pac/pac-api/pkg/export"
)

// Export formats for the subscriber list.
const (
	ExportFormatCSV = "csv"
	ExportFormatPDF = "pdf"
)

// SubscriberService handles newsletter signups and the admin list.
type SubscriberService struct {
	store     store.SubscriberStore
	validator *validator.Validate
	logger    *zap.Logger
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
}

// NewSubscriberService constructs the service.
func NewSubscriberService(st store.SubscriberStore, validate *validator.Validate, logger *zap.Logger) *SubscriberService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubscriberService{
		store:     st,
		validator: validate,
		logger:    logger,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
	}
}

type subscribeRequest struct {
	Email string `validate:"required,contains=@"`
}

// List returns subscribers, newest first.
func (s *SubscriberService) List(ctx context.Context) ([]models.Subscriber, error) {
	subscribers, err := s.store.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list subscribers")
	}
	return subscribers, nil
}

// Subscribe records a signup. Subscribing an already-registered address is
// treated as success and leaves the original record untouched.
func (s *SubscriberService) Subscribe(ctx context.Context, email string) error {
	if err := s.validator.Struct(subscribeRequest{Email: email}); err != nil {
		return appErrors.Clone(appErrors.ErrValidation, "Valid email is required")
	}
	subscriber := &models.Subscriber{Email: email}
	if err := s.store.Upsert(ctx, subscriber); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save subscriber")
	}
	return nil
}

// Unsubscribe removes a signup by email; unknown addresses are a no-op.
func (s *SubscriberService) Unsubscribe(ctx context.Context, email string) error {
	if err := s.store.DeleteByEmail(ctx, email); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete subscriber")
	}
	return nil
}

// Export renders the subscriber list as CSV or PDF and returns the bytes
// with their content type.
func (s *SubscriberService) Export(ctx context.Context, format string) ([]byte, string, error) {
	subscribers, err := s.List(ctx)
	if err != nil {
		return nil, "", err
	}

	dataset := export.Dataset{
		Headers: []string{"Email", "Subscribed At"},
		Rows:    make([]map[string]string, 0, len(subscribers)),
	}
	for _, subscriber := range subscribers {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"Email":         subscriber.Email,
			"Subscribed At": subscriber.SubscribedAt.Format(time.RFC3339),
		})
	}

	switch format {
	case ExportFormatPDF:
		raw, err := s.pdf.Render(dataset, "Newsletter Subscribers")
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return raw, "application/pdf", nil
	case ExportFormatCSV, "":
		raw, err := s.csv.Render(dataset)
		if err != nil {
			return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return raw, "text/csv", nil
	default:
		return nil, "", appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}
}
