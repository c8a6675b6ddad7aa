package apiclient

import (
	"medadmin-service/internal/client/authstate"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

const EndpointRefresh = "/auth/refresh"

type Options struct {
	BaseURL string
	// Timeout bounds each HTTP exchange. Zero means no client-side deadline.
	Timeout    time.Duration
	HTTPClient *http.Client
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Auth       *authstate.Store
	Log        *zap.Logger

	refreshMu sync.Mutex
}

func NewClient(options Options, auth *authstate.Store, logger *zap.Logger) *Client {
	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.Timeout}
	}
	return &Client{
		BaseURL:    options.BaseURL,
		HTTPClient: httpClient,
		Auth:       auth,
		Log:        logger,
	}
}
