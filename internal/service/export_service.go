package service

import (
	"context"
	"fmt"
	"io"

	"github.com/locvowork/tablecopy/internal/logger"
	"github.com/locvowork/tablecopy/internal/metadata"
	"github.com/locvowork/tablecopy/pkg/colplan"
	"github.com/locvowork/tablecopy/pkg/sheetcopy"
	"github.com/locvowork/tablecopy/pkg/xlsxout"
)

// MetadataProvider is the source collaborator: ordered column descriptors,
// the record-level annotation text, and a forward-only row sequence.
type MetadataProvider interface {
	Descriptors(ctx context.Context, schema, table string) ([]colplan.Descriptor, string, error)
	Rows(ctx context.Context, schema, table string, descs []colplan.Descriptor) (sheetcopy.RowProvider, error)
}

type ExportService interface {
	Export(ctx context.Context, job Job, w io.Writer) error
	ExportToFile(ctx context.Context, job Job) error
}

type exportService struct {
	meta MetadataProvider
}

func NewExportService(meta MetadataProvider) ExportService {
	return &exportService{meta: meta}
}

// Export runs one conversion and streams the finished document to w.
func (s *exportService) Export(ctx context.Context, job Job, w io.Writer) error {
	wb := xlsxout.New()
	defer wb.Close()
	if err := s.run(ctx, job, wb); err != nil {
		return err
	}
	if _, err := wb.WriteTo(w); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// ExportToFile runs one conversion and saves the document at job.Output.
// A partially written file may remain on disk after a failure.
func (s *exportService) ExportToFile(ctx context.Context, job Job) error {
	if job.Output == "" {
		return fmt.Errorf("job has no output path")
	}
	wb := xlsxout.New()
	defer wb.Close()
	if err := s.run(ctx, job, wb); err != nil {
		return err
	}
	if err := wb.SaveAs(job.Output); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	logger.InfoLog(ctx, fmt.Sprintf("File copied to %s.", job.Output))
	return nil
}

// run is the single sequential pass: metadata once, plans once, then the
// rows exactly once in source order.
func (s *exportService) run(ctx context.Context, job Job, wb sheetcopy.Workbook) error {
	schema, table, err := metadata.SplitQualified(job.Table)
	if err != nil {
		return err
	}

	descs, recordText, err := s.meta.Descriptors(ctx, schema, table)
	if err != nil {
		return fmt.Errorf("load column metadata: %w", err)
	}
	plan := colplan.Build(descs, recordText)
	if len(plan.Columns) == 0 {
		return fmt.Errorf("every column of %s is skipped", job.Table)
	}

	rows, err := s.meta.Rows(ctx, schema, table, descs)
	if err != nil {
		return err
	}
	defer rows.Close()
	logger.InfoLog(ctx, fmt.Sprintf("Opened %s.%s for reading.", schema, table))

	sheetName := job.Sheet
	if sheetName == "" {
		sheetName = table
	}
	sheet, err := wb.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("create sheet %s: %w", sheetName, err)
	}
	if err := sheetcopy.Assemble(sheet, plan, job.Headers, rows); err != nil {
		return err
	}
	logger.DebugLog(ctx, fmt.Sprintf("Streamed %s.%s into %d columns.", schema, table, len(plan.Columns)))
	return nil
}
