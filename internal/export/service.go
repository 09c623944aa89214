package export

import (
	"context"

	"github.com/yug1204/event-registration/internal/auditlog"
	"github.com/yug1204/event-registration/internal/registration"
)

// Service fetches the filtered registration set and hands it to the exporter.
type Service struct {
	Regs     *registration.Repository
	Exporter Exporter
	AuditSvc auditlog.Service
}

func NewService(regs *registration.Repository, exporter Exporter, auditSvc auditlog.Service) *Service {
	return &Service{
		Regs:     regs,
		Exporter: exporter,
		AuditSvc: auditSvc,
	}
}

// ExportRegistrations builds the download for the given filters and format.
func (s *Service) ExportRegistrations(filters registration.ListFilters, format string, ip string) ([]byte, string, string, error) {
	regs, err := s.Regs.List(filters)
	if err != nil {
		return nil, "", "", err
	}

	data, fname, mime, err := s.Exporter.Export(format, regs)
	if err != nil {
		return nil, "", "", err
	}

	s.AuditSvc.LogAction(context.Background(), "REGISTRATIONS_EXPORTED", map[string]interface{}{
		"format":   format,
		"filename": fname,
		"rows":     len(regs),
	}, ip, "success")

	return data, fname, mime, nil
}
