package mapping

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ShopBridge/entity"
)

type fakeCore struct {
	preview *entity.MappingPreview
}

func (f *fakeCore) PreviewOrder(order *entity.ShopifyOrder) (*entity.MappingPreview, error) {
	return f.preview, nil
}

func TestPreview_ReturnsMappedDeal(t *testing.T) {
	core := &fakeCore{
		preview: &entity.MappingPreview{
			Deal:        entity.DealFields{Title: "#1001", Opportunity: 59.99},
			SkippedSKUs: []string{"GHOST"},
		},
	}
	handler := Preview(slog.Default(), core)

	body := bytes.NewBufferString(`{"id": 1001, "name": "#1001"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/mapping/preview", body)
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Data    struct {
			Deal        entity.DealFields `json:"deal"`
			SkippedSKUs []string          `json:"skipped_skus"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "#1001", envelope.Data.Deal.Title)
	assert.Equal(t, []string{"GHOST"}, envelope.Data.SkippedSKUs)
}

func TestPreview_InvalidBody(t *testing.T) {
	handler := Preview(slog.Default(), &fakeCore{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/mapping/preview", bytes.NewBufferString(`{broken`))
	rec := httptest.NewRecorder()
	handler(rec, req)

	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
}
