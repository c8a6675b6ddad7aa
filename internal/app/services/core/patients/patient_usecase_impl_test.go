package patients

import (
	"context"
	"errors"
	"medadmin-service/internal/app/models"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/dto/requests"
	"medadmin-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPatientUsecase_CRUD(t *testing.T) {
	uc := NewPatientUsecase(NewPatientMemoryRepository(), zap.NewNop())
	ctx := context.Background()

	created, err := uc.Create(ctx, &requests.CreatePatient{
		Name:      "Zhang San",
		Gender:    "male",
		Phone:     "13800138000",
		Allergies: []string{"penicillin"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, constvars.PatientStatusActive, created.Status)

	_, err = uc.Create(ctx, &requests.CreatePatient{Name: "Li Si", Gender: "female", Status: constvars.PatientStatusDischarged})
	require.NoError(t, err)

	found, err := uc.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	active, err := uc.FindAll(ctx, &requests.PatientFilter{Status: constvars.PatientStatusActive})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Zhang San", active[0].Name)

	searched, err := uc.FindAll(ctx, &requests.PatientFilter{Search: "li"})
	require.NoError(t, err)
	require.Len(t, searched, 1)
	assert.Equal(t, "Li Si", searched[0].Name)

	newName := "Zhang San Feng"
	updated, err := uc.Update(ctx, created.ID, &requests.UpdatePatient{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.Equal(t, "13800138000", updated.Phone, "unset fields are kept")

	replaced, err := uc.Replace(ctx, created.ID, &requests.CreatePatient{Name: "Replaced", Gender: "other"})
	require.NoError(t, err)
	assert.Empty(t, replaced.Phone, "replace drops fields absent from the body")
	assert.Equal(t, created.CreatedAt, replaced.CreatedAt)

	require.NoError(t, uc.Delete(ctx, created.ID))

	_, err = uc.FindByID(ctx, created.ID)
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	assert.Equal(t, constvars.ErrCodeNotFound, customErr.Code)
	assert.Equal(t, "patient not found", customErr.ClientMessage)

	assert.Error(t, uc.Delete(ctx, created.ID))
}

func TestPatientMemoryRepository_IsolatesStoredState(t *testing.T) {
	repo := NewPatientMemoryRepository()
	ctx := context.Background()
	patient := &models.Patient{ID: "p-1", Name: "A", Allergies: []string{"dust"}}
	require.NoError(t, repo.Create(ctx, patient))

	patient.Allergies[0] = "mutated"
	stored, err := repo.FindByID(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"dust"}, stored.Allergies)
}

type mockPatientRepository struct {
	mock.Mock
}

func (m *mockPatientRepository) FindAll(ctx context.Context, filter *requests.PatientFilter) ([]models.Patient, error) {
	args := m.Called(ctx, filter)
	result, _ := args.Get(0).([]models.Patient)
	return result, args.Error(1)
}

func (m *mockPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	result, _ := args.Get(0).(*models.Patient)
	return result, args.Error(1)
}

func (m *mockPatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	return m.Called(ctx, patient).Error(0)
}

func (m *mockPatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	return m.Called(ctx, patient).Error(0)
}

func (m *mockPatientRepository) Delete(ctx context.Context, patientID string) (bool, error) {
	args := m.Called(ctx, patientID)
	return args.Bool(0), args.Error(1)
}

func TestPatientUsecase_RepositoryFailure(t *testing.T) {
	repo := new(mockPatientRepository)
	uc := NewPatientUsecase(repo, zap.NewNop())
	dbErr := exceptions.ErrMongoDBFindDocument(errors.New("connection refused"))

	repo.On("FindAll", mock.Anything, mock.Anything).Return(nil, dbErr).Once()

	_, err := uc.FindAll(context.Background(), &requests.PatientFilter{})

	assert.ErrorIs(t, err, dbErr)
	repo.AssertExpectations(t)
}
