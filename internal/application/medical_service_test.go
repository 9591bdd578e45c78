package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	medicalDomain "github.com/helios-ride/service-routing/internal/domain/medical"
	"github.com/helios-ride/service-routing/internal/platform/domain"
)

func TestMedicalService_GetMedicalID(t *testing.T) {
	repo := &fakeRecords{available: true, records: map[string]*medicalDomain.Record{
		"user-1": {FullName: "Priya Raman", BloodGroup: "O+"},
	}}
	svc := NewMedicalService(repo, zap.NewNop())

	record, err := svc.GetMedicalID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Priya Raman", record.FullName)
}

func TestMedicalService_Errors(t *testing.T) {
	tests := []struct {
		name string
		repo medicalDomain.RecordRepository
		uid  string
		kind domain.ErrorKind
	}{
		{"missing uid", &fakeRecords{available: true}, " ", domain.KindValidation},
		{"store unavailable", &fakeRecords{available: false}, "user-1", domain.KindUnavailable},
		{"nil store", nil, "user-1", domain.KindUnavailable},
		{"unknown user", &fakeRecords{available: true}, "ghost", domain.KindNotFound},
		{"store failure", &fakeRecords{available: true, err: errors.New("connection reset")}, "user-1", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMedicalService(tt.repo, zap.NewNop())
			_, err := svc.GetMedicalID(context.Background(), tt.uid)
			require.Error(t, err)
			assert.Equal(t, tt.kind, domain.KindOf(err))
		})
	}
}
