package export

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/propertyops/asset-governor/constants"
	"github.com/propertyops/asset-governor/internal/common"
	"github.com/propertyops/asset-governor/internal/entity"
	"github.com/propertyops/asset-governor/internal/repository"
)

// Service reads from the repositories and produces XLSX bytes for
// committee review packets.
type Service struct {
	alertsRepo  repository.AlertRepository
	locksRepo   repository.LockRepository
	metricsRepo repository.MetricRepository
	logger      *slog.Logger
}

func NewService(alerts repository.AlertRepository, locks repository.LockRepository, metrics repository.MetricRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{alertsRepo: alerts, locksRepo: locks, metricsRepo: metrics, logger: logger}
}

// ExportGovernanceXLSX returns a workbook for one property: its alerts, its
// locks, and the current value of every metric.
func (s *Service) ExportGovernanceXLSX(ctx context.Context, propertyID uuid.UUID) ([]byte, error) {
	start := time.Now()

	alerts, err := s.alertsRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, common.WrapError(err, "query alerts")
	}
	locks, err := s.locksRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, common.WrapError(err, "query locks")
	}
	current, err := s.metricsRepo.Current(ctx, propertyID)
	if err != nil {
		return nil, common.WrapError(err, "query metrics")
	}

	f := excelize.NewFile()
	if err := s.writeAlertsSheet(f, alerts); err != nil {
		return nil, err
	}
	if err := s.writeLocksSheet(f, locks); err != nil {
		return nil, err
	}
	if err := s.writeMetricsSheet(f, current); err != nil {
		return nil, err
	}
	// Drop the default sheet excelize creates.
	_ = f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, common.WrapError(err, "xlsx write")
	}

	s.logger.Info("export.xlsx.ok",
		"property_id", propertyID.String(),
		"alerts", len(alerts),
		"locks", len(locks),
		"metrics", len(current),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func newSheet(f *excelize.File, name string, headers []string) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(name, cell, h)
	}
	return nil
}

func writeCell(f *excelize.File, sheet string, col, row int, v any) {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	_ = f.SetCellValue(sheet, cell, v)
}

func (s *Service) writeAlertsSheet(f *excelize.File, alerts []*entity.CommitteeAlert) error {
	const sheet = "Alerts"
	if err := newSheet(f, sheet, []string{
		"Created", "Alert Type", "Metric", "Severity", "Status", "Resolved", "Resolved By", "Notes",
	}); err != nil {
		return err
	}
	row := 2
	for _, a := range alerts {
		writeCell(f, sheet, 1, row, a.CreatedAt.Format("2006-01-02 15:04"))
		writeCell(f, sheet, 2, row, string(a.AlertType))
		writeCell(f, sheet, 3, row, string(a.MetricType))
		writeCell(f, sheet, 4, row, string(a.Severity))
		writeCell(f, sheet, 5, row, string(a.Status))
		if a.ResolvedAt != nil {
			writeCell(f, sheet, 6, row, a.ResolvedAt.Format("2006-01-02 15:04"))
		}
		if a.ResolvedBy != nil {
			writeCell(f, sheet, 7, row, *a.ResolvedBy)
		}
		if a.ResolutionNotes != nil {
			writeCell(f, sheet, 8, row, *a.ResolutionNotes)
		}
		row++
	}
	_ = f.SetColWidth(sheet, "A", "A", 18)
	_ = f.SetColWidth(sheet, "B", "C", 24)
	_ = f.SetColWidth(sheet, "F", "F", 18)
	_ = f.SetColWidth(sheet, "H", "H", 48)
	return nil
}

func (s *Service) writeLocksSheet(f *excelize.File, locks []*entity.WorkflowLock) error {
	const sheet = "Locks"
	if err := newSheet(f, sheet, []string{
		"Locked", "Lock Type", "Blocked Actions", "Status", "Unlocked", "Held For",
	}); err != nil {
		return err
	}
	now := time.Now().UTC()
	row := 2
	for _, l := range locks {
		writeCell(f, sheet, 1, row, l.LockedAt.Format("2006-01-02 15:04"))
		writeCell(f, sheet, 2, row, string(l.LockType))
		writeCell(f, sheet, 3, row, actionList(l.BlockedActions))
		writeCell(f, sheet, 4, row, string(l.Status))
		if l.UnlockedAt != nil {
			writeCell(f, sheet, 5, row, l.UnlockedAt.Format("2006-01-02 15:04"))
		}
		writeCell(f, sheet, 6, row, l.Duration(now).Round(time.Minute).String())
		row++
	}
	_ = f.SetColWidth(sheet, "A", "A", 18)
	_ = f.SetColWidth(sheet, "B", "C", 26)
	_ = f.SetColWidth(sheet, "E", "E", 18)
	return nil
}

func (s *Service) writeMetricsSheet(f *excelize.File, metrics []*entity.ExtractedMetric) error {
	const sheet = "Metrics"
	if err := newSheet(f, sheet, []string{
		"Metric", "Period", "Value", "Version", "Extracted",
	}); err != nil {
		return err
	}
	row := 2
	for _, m := range metrics {
		writeCell(f, sheet, 1, row, string(m.MetricType))
		writeCell(f, sheet, 2, row, m.Period)
		writeCell(f, sheet, 3, row, m.Value)
		writeCell(f, sheet, 4, row, m.Version)
		writeCell(f, sheet, 5, row, m.ExtractedAt.Format("2006-01-02 15:04"))
		row++
	}
	_ = f.SetColWidth(sheet, "A", "A", 26)
	_ = f.SetColWidth(sheet, "E", "E", 18)
	return nil
}

func actionList(actions []constants.ActionType) string {
	out := ""
	for i, a := range actions {
		if i > 0 {
			out += ", "
		}
		out += string(a)
	}
	return out
}
