package apiclient

import (
	"context"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/dto/requests"
	"medadmin-service/internal/pkg/dto/responses"
	"medadmin-service/internal/pkg/exceptions"
	"medadmin-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// refresh runs at most one refresh at a time. A caller that waited on another
// refresh reuses its token instead of issuing a second one.
func (c *Client) refresh(ctx context.Context, failedToken string) bool {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	current := c.Auth.Token()
	if current == "" {
		return false
	}
	if current != failedToken {
		return true
	}

	response, _ := send[responses.Login](ctx, c, http.MethodPost, EndpointRefresh, nil, RequestConfig{})
	if response.Error != "" || response.Data == nil || response.Data.Token == "" {
		c.Log.Warn("apiClient.refresh failed",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Int(constvars.LoggingStatusCodeKey, response.Status),
		)
		return false
	}

	user := response.Data.User
	if user == nil {
		user = c.Auth.User()
	}
	if err := c.Auth.SetSession(response.Data.Token, user); err != nil {
		return false
	}
	return true
}

// Login stores the issued session on success.
func (c *Client) Login(ctx context.Context, request *requests.Login) Response[responses.Login] {
	response := Post[responses.Login](ctx, c, "/auth/login", request, RequestConfig{SkipAuth: true})
	if response.Error == "" && response.Data != nil {
		if err := c.Auth.SetSession(response.Data.Token, response.Data.User); err != nil {
			return failure[responses.Login](0, constvars.ErrCodeInternal, err.Error()).withKind(exceptions.KindInfrastructure)
		}
	}
	return response
}

func (c *Client) Register(ctx context.Context, request *requests.Register) Response[responses.Register] {
	return Post[responses.Register](ctx, c, "/auth/register", request, RequestConfig{SkipAuth: true})
}

func (c *Client) Profile(ctx context.Context) Response[responses.User] {
	return Get[responses.User](ctx, c, "/auth/me", RequestConfig{})
}

// Logout ends the server session and always clears the local one.
func (c *Client) Logout(ctx context.Context) Response[struct{}] {
	var response Response[struct{}]
	if c.Auth.Token() != "" {
		response = Post[struct{}](ctx, c, "/auth/logout", nil, RequestConfig{})
	} else {
		response = Response[struct{}]{Status: http.StatusOK, Data: &struct{}{}}
	}
	_ = c.Auth.Logout()
	return response
}
