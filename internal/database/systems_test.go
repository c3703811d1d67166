package database

import (
	"context"
	"errors"
	"testing"

	"ai-act-tracker/internal/certification"
	"ai-act-tracker/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

func TestLoadSystem_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "ai_systems"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "name"}))

	sys, err := NewSystemStore(db).LoadSystem(context.Background(), 1, 404)
	assert.Nil(t, sys)
	assert.ErrorIs(t, err, certification.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSystem_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "ai_systems"`).
		WillReturnError(errors.New("connection refused"))

	_, err := NewSystemStore(db).LoadSystem(context.Background(), 1, 2)
	require.Error(t, err)
	assert.False(t, errors.Is(err, certification.ErrNotFound))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestLoadSystem_WithGapAssessment(t *testing.T) {
	db, mock := newMockDB(t)
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(`SELECT \* FROM "ai_systems"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "organization_id", "name"}).
			AddRow(3, 1, "Credit scoring"))
	mock.ExpectQuery(`SELECT \* FROM "gap_assessments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "ai_system_id"}).AddRow(5, 3))
	mock.ExpectQuery(`SELECT \* FROM "requirements" WHERE .* ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "gap_assessment_id", "article", "title", "category", "status"}).
			AddRow(10, 5, "Art. 9", "Risk management system", "Risk Management", "IMPLEMENTED").
			AddRow(11, 5, "Art. 12", "Automatic logging", "Record Keeping", "NOT_STARTED"))
	mock.ExpectQuery(`SELECT \* FROM "risk_registers"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "ai_system_id"}))
	mock.ExpectQuery(`SELECT \* FROM "technical_documentations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "ai_system_id"}))
	mock.ExpectQuery(`SELECT \* FROM "governance_structures"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "ai_system_id"}))

	sys, err := NewSystemStore(db).LoadSystem(context.Background(), 1, 3)
	require.NoError(t, err)
	require.NotNil(t, sys)

	assert.Equal(t, uint(3), sys.ID)
	assert.Equal(t, "Credit scoring", sys.Name)
	require.NotNil(t, sys.GapAssessment)
	assert.Equal(t, []certification.Requirement{
		{Article: "Art. 9", Title: "Risk management system", Category: "Risk Management", Status: certification.StatusImplemented},
		{Article: "Art. 12", Title: "Automatic logging", Category: "Record Keeping", Status: certification.StatusNotStarted},
	}, sys.GapAssessment.Requirements)
	assert.Nil(t, sys.RiskRegister)
	assert.Nil(t, sys.TechnicalDocumentation)
	assert.Nil(t, sys.Governance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToSnapshot(t *testing.T) {
	inactive := false
	sys := models.AISystem{
		OrganizationID: 9,
		Name:           "Triage bot",
		RiskRegister: &models.RiskRegister{Risks: []models.Risk{{
			Title:                  "Misdiagnosis",
			RiskLevel:              certification.RiskCritical,
			TreatmentDecision:      certification.TreatmentMitigate,
			TreatmentJustification: "",
			MitigationActions: []models.MitigationAction{
				{Description: "Clinician review", Status: certification.MitigationCompleted},
			},
		}}},
		TechnicalDocumentation: &models.TechnicalDocumentation{
			IntendedUse:            "Routing patient messages",
			CompletenessPercentage: 12.5,
		},
		Governance: &models.GovernanceStructure{Roles: []models.GovernanceRole{
			{RoleType: certification.RoleSystemOwner, PersonName: "A. Owner"},
			{RoleType: certification.RoleRiskOwner, PersonName: "R. Owner", IsActive: &inactive},
		}},
	}
	sys.ID = 4

	snap := toSnapshot(sys)
	assert.Equal(t, uint(4), snap.ID)
	assert.Equal(t, uint(9), snap.OrganizationID)
	assert.Nil(t, snap.GapAssessment)

	require.NotNil(t, snap.RiskRegister)
	require.Len(t, snap.RiskRegister.Risks, 1)
	assert.Equal(t, certification.RiskCritical, snap.RiskRegister.Risks[0].RiskLevel)
	assert.Equal(t, []certification.MitigationAction{{Status: certification.MitigationCompleted}},
		snap.RiskRegister.Risks[0].MitigationActions)

	require.NotNil(t, snap.TechnicalDocumentation)
	assert.Equal(t, "Routing patient messages", snap.TechnicalDocumentation.IntendedUse)
	assert.Equal(t, 12.5, snap.TechnicalDocumentation.CompletenessPercentage)

	require.NotNil(t, snap.Governance)
	require.Len(t, snap.Governance.Roles, 2)
	assert.True(t, snap.Governance.Roles[0].Active())
	assert.False(t, snap.Governance.Roles[1].Active())

	// the snapshot must not alias the model
	inactive = true
	assert.False(t, snap.Governance.Roles[1].Active())
}

func TestGormLoggerLogMode(t *testing.T) {
	l := NewGormLogger(0)
	silent := l.LogMode(gormlogger.Silent).(*GormLogger)
	assert.Equal(t, gormlogger.Silent, silent.level)
	assert.Equal(t, gormlogger.Warn, l.level, "LogMode must not modify the receiver")
}
