package medicalRecords

import (
	"context"
	"medadmin-service/internal/app/contracts"
	"medadmin-service/internal/app/models"
	"medadmin-service/internal/pkg/dto/requests"
	"sort"
	"sync"
)

type medicalRecordMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]models.MedicalRecord
}

func NewMedicalRecordMemoryRepository() contracts.MedicalRecordRepository {
	return &medicalRecordMemoryRepository{
		records: make(map[string]models.MedicalRecord),
	}
}

// FindAll returns matching records ordered by visit date, most recent first.
func (repo *medicalRecordMemoryRepository) FindAll(ctx context.Context, filter *requests.MedicalRecordFilter) ([]models.MedicalRecord, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	result := make([]models.MedicalRecord, 0)
	for _, record := range repo.records {
		if filter != nil && filter.PatientID != "" && record.PatientID != filter.PatientID {
			continue
		}
		result = append(result, cloneRecord(record))
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].VisitDate != result[j].VisitDate {
			return result[i].VisitDate > result[j].VisitDate
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (repo *medicalRecordMemoryRepository) FindByID(ctx context.Context, recordID string) (*models.MedicalRecord, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	record, ok := repo.records[recordID]
	if !ok {
		return nil, nil
	}
	record = cloneRecord(record)
	return &record, nil
}

func (repo *medicalRecordMemoryRepository) Create(ctx context.Context, record *models.MedicalRecord) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.records[record.ID] = cloneRecord(*record)
	return nil
}

func (repo *medicalRecordMemoryRepository) Update(ctx context.Context, record *models.MedicalRecord) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.records[record.ID] = cloneRecord(*record)
	return nil
}

func (repo *medicalRecordMemoryRepository) Delete(ctx context.Context, recordID string) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.records[recordID]; !ok {
		return false, nil
	}
	delete(repo.records, recordID)
	return true, nil
}

func cloneRecord(record models.MedicalRecord) models.MedicalRecord {
	if record.Medications != nil {
		record.Medications = append([]string(nil), record.Medications...)
	}
	return record
}
