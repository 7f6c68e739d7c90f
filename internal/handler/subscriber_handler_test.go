package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kanaka-pac/pac-api/internal/models"
	appErrors "github.com/kanaka-pac/pac-api/pkg/errors"
)

type subscriberServiceMock struct {
	listResp     []models.Subscriber
	subscribed   string
	subscribeErr error
	unsubscribed string
	exportRaw    []byte
	exportType   string
}

func (m *subscriberServiceMock) List(ctx context.Context) ([]models.Subscriber, error) {
	return m.listResp, nil
}

func (m *subscriberServiceMock) Subscribe(ctx context.Context, email string) error {
	if m.subscribeErr != nil {
		return m.subscribeErr
	}
	m.subscribed = email
	return nil
}

func (m *subscriberServiceMock) Unsubscribe(ctx context.Context, email string) error {
	m.unsubscribed = email
	return nil
}

func (m *subscriberServiceMock) Export(ctx context.Context, format string) ([]byte, string, error) {
	return m.exportRaw, m.exportType, nil
}

func TestSubscribeSuccess(t *testing.T) {
	mock := &subscriberServiceMock{}
	handler := NewSubscriberHandler(mock)

	c, w := newTestContext(t, http.MethodPost, "/api/subscribe", []byte(`{"email":"parent@example.com"}`))
	handler.Subscribe(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "parent@example.com", mock.subscribed)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Subscribed successfully", body["message"])
}

func TestSubscribeInvalidEmail(t *testing.T) {
	mock := &subscriberServiceMock{
		subscribeErr: appErrors.Clone(appErrors.ErrValidation, "Valid email is required"),
	}
	handler := NewSubscriberHandler(mock)

	c, w := newTestContext(t, http.MethodPost, "/api/subscribe", []byte(`{"email":"nope"}`))
	handler.Subscribe(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Valid email is required"}`, w.Body.String())
}

func TestUnsubscribeRequiresEmail(t *testing.T) {
	handler := NewSubscriberHandler(&subscriberServiceMock{})

	c, w := newTestContext(t, http.MethodDelete, "/api/subscribe", nil)
	handler.Unsubscribe(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Email required"}`, w.Body.String())
}

func TestUnsubscribe(t *testing.T) {
	mock := &subscriberServiceMock{}
	handler := NewSubscriberHandler(mock)

	c, w := newTestContext(t, http.MethodDelete, "/api/subscribe?email=parent@example.com", nil)
	handler.Unsubscribe(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "parent@example.com", mock.unsubscribed)
}

func TestExportSetsAttachmentHeaders(t *testing.T) {
	mock := &subscriberServiceMock{exportRaw: []byte("Email,Subscribed At\n"), exportType: "text/csv"}
	handler := NewSubscriberHandler(mock)

	c, w := newTestContext(t, http.MethodGet, "/api/subscribe/export", nil)
	handler.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=subscribers.csv", w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
}

func TestExportPDFFilename(t *testing.T) {
	mock := &subscriberServiceMock{exportRaw: []byte("%PDF"), exportType: "application/pdf"}
	handler := NewSubscriberHandler(mock)

	c, w := newTestContext(t, http.MethodGet, "/api/subscribe/export?format=pdf", nil)
	handler.Export(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=subscribers.pdf", w.Header().Get("Content-Disposition"))
}
