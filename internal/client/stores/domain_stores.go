package stores

import (
	"context"
	"medadmin-service/internal/app/models"
	"medadmin-service/internal/client/apiclient"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

var (
	_ Store[models.Patient]       = (*PatientStore)(nil)
	_ Store[models.MedicalRecord] = (*MedicalRecordStore)(nil)
	_ Store[models.Notification]  = (*NotificationStore)(nil)
)

type PatientStore struct {
	*ResourceStore[models.Patient]
}

func NewPatientStore(client *apiclient.Client, logger *zap.Logger) *PatientStore {
	return &PatientStore{NewResourceStore[models.Patient](client, "/"+constvars.ResourcePatients, logger)}
}

// FetchFiltered replaces the collection with the patients matching status and search.
// Empty values are not sent.
func (s *PatientStore) FetchFiltered(ctx context.Context, filter requests.PatientFilter) error {
	return s.fetchList(ctx, apiclient.RequestConfig{Params: []apiclient.Param{
		apiclient.P(constvars.QueryParamStatus, optional(filter.Status)),
		apiclient.P(constvars.QueryParamSearch, optional(filter.Search)),
	}})
}

type MedicalRecordStore struct {
	*ResourceStore[models.MedicalRecord]
}

func NewMedicalRecordStore(client *apiclient.Client, logger *zap.Logger) *MedicalRecordStore {
	return &MedicalRecordStore{NewResourceStore[models.MedicalRecord](client, "/"+constvars.ResourceMedicalRecords, logger)}
}

func (s *MedicalRecordStore) FetchByPatient(ctx context.Context, patientID string) error {
	return s.fetchList(ctx, apiclient.RequestConfig{Params: []apiclient.Param{
		apiclient.P(constvars.QueryParamPatientID, patientID),
	}})
}

type NotificationStore struct {
	*ResourceStore[models.Notification]
}

func NewNotificationStore(client *apiclient.Client, logger *zap.Logger) *NotificationStore {
	return &NotificationStore{NewResourceStore[models.Notification](client, "/"+constvars.ResourceNotifications, logger)}
}

func (s *NotificationStore) MarkRead(ctx context.Context, id string) (*models.Notification, error) {
	read := true
	return s.Update(ctx, id, &requests.UpdateNotification{Read: &read})
}

func (s *NotificationStore) UnreadCount() int {
	count := 0
	for _, notification := range s.Items() {
		if !notification.Read {
			count++
		}
	}
	return count
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
