package exceptions

import (
	"medadmin-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   Kind
	}{
		{0, KindNetwork},
		{constvars.StatusBadRequest, KindValidation},
		{constvars.StatusUnprocessableEntity, KindValidation},
		{constvars.StatusUnauthorized, KindAuthentication},
		{constvars.StatusForbidden, KindAuthorization},
		{constvars.StatusNotFound, KindNotFound},
		{constvars.StatusConflict, KindConflict},
		{constvars.StatusTooManyRequests, KindInfrastructure},
		{constvars.StatusInternalServerError, KindInfrastructure},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, KindForStatus(tt.status), "status %d", tt.status)
	}
}
