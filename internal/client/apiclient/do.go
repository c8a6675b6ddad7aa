package apiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/dto/responses"
	"medadmin-service/internal/pkg/exceptions"
	"medadmin-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// attempt describes what a single exchange did on the wire.
type attempt struct {
	sent  bool
	token string
}

// Do performs one API call and never panics or returns a Go error: every
// outcome is folded into Response. A 401 on an authenticated call triggers
// exactly one token refresh and one retry.
func Do[T any](ctx context.Context, c *Client, method, endpoint string, body interface{}, cfg RequestConfig) Response[T] {
	requestID := utils.GetRequestID(ctx)
	startTime := time.Now()
	c.Log.Debug("apiClient.Do called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingEndpointKey, endpoint),
	)

	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			c.Log.Error("apiClient.Do error marshaling request body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return failure[T](0, constvars.ErrCodeInvalidJSON, constvars.ErrDevCannotMarshalJSON).withKind(exceptions.KindValidation)
		}
		payload = data
	}

	response, first := send[T](ctx, c, method, endpoint, payload, cfg)
	if response.Status == http.StatusUnauthorized && first.sent && !cfg.SkipAuth && endpoint != EndpointRefresh {
		if c.refresh(ctx, first.token) {
			response, _ = send[T](ctx, c, method, endpoint, payload, cfg)
		} else {
			c.Log.Info("apiClient.Do refresh failed, clearing session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			_ = c.Auth.Logout()
		}
	}

	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingEndpointKey, endpoint),
		zap.Int(constvars.LoggingStatusCodeKey, response.Status),
		zap.Duration(constvars.LoggingDurationKey, time.Since(startTime)),
	}
	if response.Error != "" {
		c.Log.Warn("apiClient.Do failed", append(fields, zap.String(constvars.LoggingErrorCodeKey, response.Code), zap.String("error", response.Error))...)
	} else {
		c.Log.Debug("apiClient.Do succeeded", fields...)
	}
	return response
}

func Get[T any](ctx context.Context, c *Client, endpoint string, cfg RequestConfig) Response[T] {
	return Do[T](ctx, c, http.MethodGet, endpoint, nil, cfg)
}

func Post[T any](ctx context.Context, c *Client, endpoint string, body interface{}, cfg RequestConfig) Response[T] {
	return Do[T](ctx, c, http.MethodPost, endpoint, body, cfg)
}

func Put[T any](ctx context.Context, c *Client, endpoint string, body interface{}, cfg RequestConfig) Response[T] {
	return Do[T](ctx, c, http.MethodPut, endpoint, body, cfg)
}

func Patch[T any](ctx context.Context, c *Client, endpoint string, body interface{}, cfg RequestConfig) Response[T] {
	return Do[T](ctx, c, http.MethodPatch, endpoint, body, cfg)
}

func Delete[T any](ctx context.Context, c *Client, endpoint string, cfg RequestConfig) Response[T] {
	return Do[T](ctx, c, http.MethodDelete, endpoint, nil, cfg)
}

func send[T any](ctx context.Context, c *Client, method, endpoint string, payload []byte, cfg RequestConfig) (Response[T], attempt) {
	var state attempt
	if !cfg.SkipAuth {
		state.token = c.Auth.Token()
		if state.token == "" {
			return failure[T](http.StatusUnauthorized, constvars.ErrCodeUnauthorized, constvars.ErrClientUnauthorizedAccess), state
		}
	}
	if err := ctx.Err(); err != nil {
		return transportFailure[T](ctx, err), state
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, buildURL(c.BaseURL, endpoint, cfg.Params), reader)
	if err != nil {
		return failure[T](0, constvars.ErrCodeNetwork, fmt.Sprintf(constvars.ErrClientNetworkFormat, err.Error())), state
	}

	for key, values := range cfg.Header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if hasBody(method) && req.Header.Get(constvars.HeaderContentType) == "" {
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	}
	if req.Header.Get(constvars.HeaderAccept) == "" {
		req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	}
	if requestID := utils.GetRequestID(ctx); requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	if directive := cacheControl(cfg); directive != "" {
		req.Header.Set(constvars.HeaderCacheControl, directive)
	}
	if state.token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+state.token)
	}

	state.sent = true
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return transportFailure[T](ctx, err), state
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportFailure[T](ctx, err), state
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorResponse[T](resp.StatusCode, raw), state
	}
	return successResponse[T](resp, raw, endpoint), state
}

func successResponse[T any](resp *http.Response, raw []byte, endpoint string) Response[T] {
	result := Response[T]{Status: resp.StatusCode, Data: new(T)}
	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return result
	}
	if !isJSON(resp.Header.Get(constvars.HeaderContentType)) {
		result.Raw = raw
		return result
	}

	var envelope responses.Envelope[T]
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return failure[T](resp.StatusCode, constvars.ErrCodeInvalidJSON, fmt.Sprintf(constvars.ErrDevDecodeResponse, endpoint))
	}
	result.Data = &envelope.Data
	return result
}

type errorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Error   string `json:"error"`
}

func errorResponse[T any](status int, raw []byte) Response[T] {
	var parsed errorBody
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &parsed)
	}
	message := parsed.Message
	if message == "" {
		message = parsed.Error
	}
	if message == "" {
		message = fmt.Sprintf(constvars.ErrClientRequestFailedFormat, status)
	}
	return failure[T](status, parsed.Code, message)
}

func transportFailure[T any](ctx context.Context, err error) Response[T] {
	if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
		return failure[T](0, constvars.ErrCodeRequestCancelled, constvars.ErrClientRequestCancelled)
	}
	return failure[T](0, constvars.ErrCodeNetwork, fmt.Sprintf(constvars.ErrClientNetworkFormat, err.Error()))
}

func hasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

func isJSON(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), "json")
}
