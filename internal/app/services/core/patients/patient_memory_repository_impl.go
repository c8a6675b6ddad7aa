package patients

import (
	"context"
	"medadmin-service/internal/app/contracts"
	"medadmin-service/internal/app/models"
	"medadmin-service/internal/pkg/dto/requests"
	"sort"
	"strings"
	"sync"
)

type patientMemoryRepository struct {
	mu       sync.RWMutex
	patients map[string]models.Patient
}

func NewPatientMemoryRepository() contracts.PatientRepository {
	return &patientMemoryRepository{
		patients: make(map[string]models.Patient),
	}
}

func (repo *patientMemoryRepository) FindAll(ctx context.Context, filter *requests.PatientFilter) ([]models.Patient, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	result := make([]models.Patient, 0, len(repo.patients))
	for _, patient := range repo.patients {
		if matchesPatientFilter(&patient, filter) {
			result = append(result, clonePatient(patient))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (repo *patientMemoryRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	patient, ok := repo.patients[patientID]
	if !ok {
		return nil, nil
	}
	patient = clonePatient(patient)
	return &patient, nil
}

func (repo *patientMemoryRepository) Create(ctx context.Context, patient *models.Patient) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.patients[patient.ID] = clonePatient(*patient)
	return nil
}

func (repo *patientMemoryRepository) Update(ctx context.Context, patient *models.Patient) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.patients[patient.ID] = clonePatient(*patient)
	return nil
}

func (repo *patientMemoryRepository) Delete(ctx context.Context, patientID string) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.patients[patientID]; !ok {
		return false, nil
	}
	delete(repo.patients, patientID)
	return true, nil
}

func matchesPatientFilter(patient *models.Patient, filter *requests.PatientFilter) bool {
	if filter == nil {
		return true
	}
	if filter.Status != "" && patient.Status != filter.Status {
		return false
	}
	if filter.Search != "" {
		search := strings.ToLower(filter.Search)
		return strings.Contains(strings.ToLower(patient.Name), search) ||
			strings.Contains(patient.Phone, search) ||
			strings.Contains(strings.ToLower(patient.Email), search)
	}
	return true
}

// clonePatient copies the slice and pointer fields so callers cannot mutate stored state.
func clonePatient(patient models.Patient) models.Patient {
	if patient.Allergies != nil {
		patient.Allergies = append([]string(nil), patient.Allergies...)
	}
	if patient.EmergencyContact != nil {
		contact := *patient.EmergencyContact
		patient.EmergencyContact = &contact
	}
	return patient
}
