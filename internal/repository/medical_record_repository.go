package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	medicalDomain "github.com/helios-ride/service-routing/internal/domain/medical"
	"github.com/helios-ride/service-routing/internal/platform/domain"
)

// UserModel is the GORM model for the users table. The medical record is kept
// as a JSONB document on the user row.
type UserModel struct {
	UID           string    `gorm:"type:varchar(128);primaryKey"`
	MedicalRecord []byte    `gorm:"type:jsonb"`
	CreatedAt     time.Time `gorm:"type:timestamptz;not null;default:now()"`
	UpdatedAt     time.Time `gorm:"type:timestamptz;not null;default:now()"`
}

func (UserModel) TableName() string { return "users" }

// GormMedicalRecordRepository implements RecordRepository using GORM.
// A nil DB yields a repository that reports itself unavailable.
type GormMedicalRecordRepository struct {
	db *gorm.DB
}

func NewGormMedicalRecordRepository(db *gorm.DB) *GormMedicalRecordRepository {
	return &GormMedicalRecordRepository{db: db}
}

func (r *GormMedicalRecordRepository) Available() bool {
	return r != nil && r.db != nil
}

func (r *GormMedicalRecordRepository) FindByUID(ctx context.Context, uid string) (*medicalDomain.Record, error) {
	if !r.Available() {
		return nil, domain.NewUnavailableError("medical record store")
	}

	var model UserModel
	if err := r.db.WithContext(ctx).Where("uid = ?", uid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("User", uid)
		}
		return nil, err
	}
	return toRecordDomain(&model)
}

// --- Conversions ---

func toRecordDomain(m *UserModel) (*medicalDomain.Record, error) {
	if len(m.MedicalRecord) == 0 || string(m.MedicalRecord) == "null" {
		return nil, domain.NewNotFoundError("MedicalRecord", m.UID)
	}
	var record medicalDomain.Record
	if err := json.Unmarshal(m.MedicalRecord, &record); err != nil {
		return nil, fmt.Errorf("failed to decode medical record for %s: %w", m.UID, err)
	}
	if record.IsEmpty() {
		return nil, domain.NewNotFoundError("MedicalRecord", m.UID)
	}
	return &record, nil
}
