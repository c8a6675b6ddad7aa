package stores

import (
	"context"
	"medadmin-service/internal/app/bootstrap"
	"medadmin-service/internal/app/config"
	"medadmin-service/internal/client/apiclient"
	"medadmin-service/internal/client/authstate"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/dto/requests"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLoggedInClient(t *testing.T) *apiclient.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	router := chi.NewRouter()
	_, err := bootstrap.BootstrapingTheApp(context.Background(), &config.Bootstrap{
		Router: router,
		Redis:  redisClient,
		Logger: zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			App: config.App{
				EndpointPrefix:          "/api",
				StorageDriver:           constvars.StorageDriverMemory,
				MailerDriver:            constvars.MailerDriverLog,
				SeedDemoUsers:           true,
				RequestTimeoutInSeconds: 5,
			},
			JWT:  config.AppJWT{Secret: "store-secret", ExpTimeInMinutes: 60},
			Auth: config.AppAuth{SessionExpTimeInHours: 1, LoginMaxAttempts: 10, LoginAttemptWindowInSeconds: 60},
		},
		DriverConfig: &config.DriverConfig{},
	})
	require.NoError(t, err)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	auth, err := authstate.NewStore(nil, zap.NewNop())
	require.NoError(t, err)
	client := apiclient.NewClient(apiclient.Options{BaseURL: server.URL + "/api"}, auth, zap.NewNop())

	login := client.Login(context.Background(), &requests.Login{Email: "doctor@yanyucloud.com", Password: "doctor123"})
	require.True(t, login.OK(), login.Error)
	return client
}

func TestStores_AgainstServer(t *testing.T) {
	ctx := context.Background()
	client := newLoggedInClient(t)

	patients := NewPatientStore(client, zap.NewNop())
	added, err := patients.Add(ctx, &requests.CreatePatient{
		Name:      "Sun Qi",
		Gender:    "male",
		BirthDate: "1980-03-14",
		Phone:     "13612345678",
		Allergies: []string{"penicillin"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, added.ID)
	assert.Len(t, patients.Items(), 1)

	require.NoError(t, patients.FetchByID(ctx, added.ID))
	assert.Equal(t, *added, *patients.Selected())

	records := NewMedicalRecordStore(client, zap.NewNop())
	record, err := records.Add(ctx, &requests.CreateMedicalRecord{
		PatientID: added.ID,
		Type:      "prescription",
		Title:     "Amoxicillin course",
		VisitDate: "2024-06-01",
	})
	require.NoError(t, err)

	require.NoError(t, records.FetchByPatient(ctx, added.ID))
	require.Len(t, records.Items(), 1)
	assert.Equal(t, record.ID, records.Items()[0].ID)

	require.Error(t, patients.Remove(ctx, added.ID), "doctors cannot delete patients")
	assert.Equal(t, constvars.ErrClientNotAuthorized, patients.Error())
	assert.Len(t, patients.Items(), 1)

	notifications := NewNotificationStore(client, zap.NewNop())
	require.NoError(t, notifications.FetchAll(ctx))
	require.NotEmpty(t, notifications.Items())
	unread := notifications.UnreadCount()

	_, err = notifications.MarkRead(ctx, notifications.Items()[0].ID)
	require.NoError(t, err)
	assert.Equal(t, unread-1, notifications.UnreadCount())

	translated := client.TranslateBatch(ctx, []string{"病历"}, "en", "zh-Hans")
	assert.Equal(t, []string{"病历"}, translated)
}
