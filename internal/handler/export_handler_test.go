package handler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locvowork/tablecopy/internal/service"
)

type stubExportService struct {
	gotJob service.Job
	body   string
	err    error
}

func (s *stubExportService) Export(ctx context.Context, job service.Job, w io.Writer) error {
	s.gotJob = job
	if s.err != nil {
		return s.err
	}
	_, err := io.WriteString(w, s.body)
	return err
}

func (s *stubExportService) ExportToFile(ctx context.Context, job service.Job) error {
	s.gotJob = job
	return s.err
}

func TestExportTableHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/export/customers?sheet=Everyone&h=Report&h=August", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/export/:table")
	c.SetParamNames("table")
	c.SetParamValues("customers")

	svc := &stubExportService{body: "workbook-bytes"}
	h := NewExportHandler(svc)

	require.NoError(t, h.ExportTableHandler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "workbook-bytes", rec.Body.String())
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename="customers.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "14", rec.Header().Get("Content-Length"))

	assert.Equal(t, "customers", svc.gotJob.Table)
	assert.Equal(t, "Everyone", svc.gotJob.Sheet)
	assert.Equal(t, []string{"Report", "August"}, svc.gotJob.Headers)
}

func TestExportTableHandlerFailure(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/export/customers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/export/:table")
	c.SetParamNames("table")
	c.SetParamValues("customers")

	svc := &stubExportService{err: fmt.Errorf("table not found")}
	h := NewExportHandler(svc)

	require.NoError(t, h.ExportTableHandler(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "table not found")
}

func TestHealthHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewExportHandler(&stubExportService{})
	require.NoError(t, h.HealthHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
