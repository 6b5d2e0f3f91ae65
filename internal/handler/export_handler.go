package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/locvowork/tablecopy/internal/logger"
	"github.com/locvowork/tablecopy/internal/service"
	"github.com/locvowork/tablecopy/internal/service/serviceutils"
)

type ExportHandler struct {
	svc service.ExportService
}

func NewExportHandler(svc service.ExportService) *ExportHandler {
	return &ExportHandler{svc: svc}
}

// ExportTableHandler streams a table as a formatted workbook download.
// Repeated `h` query parameters become the free-form header rows; `sheet`
// overrides the sheet name.
func (h *ExportHandler) ExportTableHandler(c echo.Context) error {
	ctx := c.Request().Context()
	table := c.Param("table")
	logger.InfoLog(ctx, "Exporting table "+table)

	job := service.Job{
		Table:   table,
		Sheet:   c.QueryParam("sheet"),
		Headers: c.QueryParams()["h"],
	}

	var buf bytes.Buffer
	if err := h.svc.Export(ctx, job, &buf); err != nil {
		logger.ErrorLog(ctx, fmt.Sprintf("export of %s failed: %v", table, err))
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to generate Excel file", err)
	}

	c.Response().Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.xlsx"`, table))
	c.Response().Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func (h *ExportHandler) HealthHandler(c echo.Context) error {
	return serviceutils.ResponseSuccess(c, http.StatusOK, "ok", nil)
}
