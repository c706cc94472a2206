package service

import (
	"context"
	"fmt"
	"time"

	"github.com/uzmpro/event-panel-api/internal/models"
	appErrors "github.com/uzmpro/event-panel-api/pkg/errors"
	"github.com/uzmpro/event-panel-api/pkg/export"
)

type eventLister interface {
	List(ctx context.Context) ([]models.EventListItem, error)
}

// exportHeaders mirrors the grid's column order.
var exportHeaders = []string{
	"BÜTÇE", "GÖNDERİM TÜRÜ", "ADRES", "ÜLKE", "ŞEHİR", "İLÇE", "SEMT",
	"POSTA KODU", "AD", "SOYAD", "ŞİRKET", "ÜNVAN", "MESAJ",
	"KARTVİZİT 1", "KARTVİZİT 2", "KARTVİZİT 3", "KARTVİZİT 4", "KARTVİZİT 5",
}

// ExportResult is a rendered download.
type ExportResult struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportService renders the event grid as a CSV or PDF download.
type ExportService struct {
	events eventLister
	csv    *export.CSVExporter
	pdf    *export.PDFExporter
}

// NewExportService constructs an ExportService instance.
func NewExportService(events eventLister) *ExportService {
	return &ExportService{
		events: events,
		csv:    export.NewCSVExporter(),
		pdf:    export.NewPDFExporter(),
	}
}

// Render produces the grid download in the requested format.
func (s *ExportService) Render(ctx context.Context, format string) (*ExportResult, error) {
	items, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}

	data := export.Dataset{Headers: exportHeaders, Rows: make([][]string, 0, len(items))}
	for _, item := range items {
		data.Rows = append(data.Rows, []string{
			item.BudgetName,
			item.DispatchType,
			strOrEmpty(item.Address),
			strOrEmpty(item.Country),
			strOrEmpty(item.City),
			strOrEmpty(item.County),
			strOrEmpty(item.District),
			strOrEmpty(item.PostalCode),
			strOrEmpty(item.FirstName),
			strOrEmpty(item.LastName),
			strOrEmpty(item.Company),
			strOrEmpty(item.JobTitle),
			strOrEmpty(item.Salutation),
			strOrEmpty(item.BusinessCard1),
			strOrEmpty(item.BusinessCard2),
			strOrEmpty(item.BusinessCard3),
			strOrEmpty(item.BusinessCard4),
			strOrEmpty(item.BusinessCard5),
		})
	}

	stamp := time.Now().UTC().Format("20060102")

	switch format {
	case "csv", "":
		content, err := s.csv.Render(data)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv export")
		}
		return &ExportResult{
			Content:     content,
			ContentType: "text/csv; charset=utf-8",
			Filename:    fmt.Sprintf("davetiyeler_%s.csv", stamp),
		}, nil
	case "pdf":
		content, err := s.pdf.Render(data, "Davetiye Listesi")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf export")
		}
		return &ExportResult{
			Content:     content,
			ContentType: "application/pdf",
			Filename:    fmt.Sprintf("davetiyeler_%s.pdf", stamp),
		}, nil
	default:
		return nil, appErrors.Validation("format must be csv or pdf", "format")
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
