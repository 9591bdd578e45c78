package application

import (
	"context"
	"strings"

	"go.uber.org/zap"

	medicalDomain "github.com/helios-ride/service-routing/internal/domain/medical"
	"github.com/helios-ride/service-routing/internal/platform/domain"
)

// MedicalService serves medical ID lookups.
type MedicalService struct {
	repo   medicalDomain.RecordRepository
	logger *zap.Logger
}

// NewMedicalService creates a new MedicalService.
func NewMedicalService(repo medicalDomain.RecordRepository, logger *zap.Logger) *MedicalService {
	return &MedicalService{repo: repo, logger: logger}
}

// GetMedicalID returns the medical record of the given user.
func (s *MedicalService) GetMedicalID(ctx context.Context, uid string) (*medicalDomain.Record, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return nil, domain.NewValidationError("User ID is required")
	}
	if s.repo == nil || !s.repo.Available() {
		return nil, domain.NewUnavailableError("medical record store")
	}

	record, err := s.repo.FindByUID(ctx, uid)
	if err != nil {
		if !domain.IsNotFound(err) {
			s.logger.Error("medical record lookup failed", zap.String("uid", uid), zap.Error(err))
		}
		return nil, err
	}
	return record, nil
}
