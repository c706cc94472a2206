package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uzmpro/event-panel-api/internal/models"
	appErrors "github.com/uzmpro/event-panel-api/pkg/errors"
)

func exportFixture() *mockEventRepo {
	return &mockEventRepo{listItems: []models.EventListItem{
		{
			ID:           "event-1",
			BudgetName:   "Bütçe A - Yurtiçi Organizasyonlar",
			DispatchType: "YURTİÇİ",
			City:         strPtr("İstanbul"),
			FirstName:    strPtr("Ahmet"),
			LastName:     strPtr("Yılmaz"),
		},
	}}
}

func TestRenderCSV(t *testing.T) {
	svc := NewExportService(newEventService(exportFixture(), &mockAuditRepo{}))

	result, err := svc.Render(context.Background(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv; charset=utf-8", result.ContentType)
	assert.True(t, strings.HasPrefix(result.Filename, "davetiyeler_"))
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))

	// Excel needs the BOM to read Turkish characters correctly.
	assert.True(t, bytes.HasPrefix(result.Content, []byte{0xEF, 0xBB, 0xBF}))

	body := string(result.Content)
	assert.Contains(t, body, "BÜTÇE")
	assert.Contains(t, body, "Bütçe A - Yurtiçi Organizasyonlar")
	assert.Contains(t, body, "İstanbul")
}

func TestRenderCSVIsDefaultFormat(t *testing.T) {
	svc := NewExportService(newEventService(exportFixture(), &mockAuditRepo{}))

	result, err := svc.Render(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(result.Filename, ".csv"))
}

func TestRenderPDF(t *testing.T) {
	svc := NewExportService(newEventService(exportFixture(), &mockAuditRepo{}))

	result, err := svc.Render(context.Background(), "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.True(t, bytes.HasPrefix(result.Content, []byte("%PDF")))
}

func TestRenderUnknownFormat(t *testing.T) {
	svc := NewExportService(newEventService(exportFixture(), &mockAuditRepo{}))

	_, err := svc.Render(context.Background(), "xlsx")
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}
