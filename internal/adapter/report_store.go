package adapter

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	m "pushup.dev/pkg/pushup/internal/model"
)

// ReportStore persists run reports.
type ReportStore interface {
	SaveReport(ctx context.Context, path m.Path, report m.RunReport) error
	LoadReport(ctx context.Context, path m.Path) (m.RunReport, error)
}

// YAMLReportStore stores reports as YAML documents through a SourceFSAdapter.
type YAMLReportStore struct {
	SourceFSAdapter
}

// NewYAMLReportStore creates a YAMLReportStore.
func NewYAMLReportStore(fs SourceFSAdapter) *YAMLReportStore {
	return &YAMLReportStore{SourceFSAdapter: fs}
}

// SaveReport writes report to path, replacing any previous report.
func (s *YAMLReportStore) SaveReport(ctx context.Context, path m.Path, report m.RunReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := s.WriteFile(ctx, path, data); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

// LoadReport reads a report previously written by SaveReport.
func (s *YAMLReportStore) LoadReport(ctx context.Context, path m.Path) (m.RunReport, error) {
	data, err := s.ReadFile(ctx, path)
	if err != nil {
		return m.RunReport{}, fmt.Errorf("read report %s: %w", path, err)
	}

	var report m.RunReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.RunReport{}, fmt.Errorf("unmarshal report %s: %w", path, err)
	}

	return report, nil
}
