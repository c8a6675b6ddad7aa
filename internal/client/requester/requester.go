package requester

import (
	"context"
	"medadmin-service/internal/client/apiclient"
	"medadmin-service/internal/pkg/constvars"
	"net/http"
	"strings"
	"sync"
)

type State[T any] struct {
	Data      *T
	Error     string
	Status    *int
	IsLoading bool
}

type Options[T any] struct {
	InitialData *T
	OnSuccess   func(data *T)
	OnError     func(message string, status int)
	// LatestOnly drops responses that resolve after a newer request was issued.
	// Without it the last response to resolve wins.
	LatestOnly bool
}

type RequestOptions struct {
	Method string
	Body   interface{}
	Config apiclient.RequestConfig
}

// Requester tracks the state of the calls made through it.
type Requester[T any] struct {
	client  *apiclient.Client
	options Options[T]

	lifetime context.Context
	cancel   context.CancelFunc

	mu     sync.Mutex
	state  State[T]
	seq    uint64
	closed bool
}

func New[T any](client *apiclient.Client, options Options[T]) *Requester[T] {
	lifetime, cancel := context.WithCancel(context.Background())
	return &Requester[T]{
		client:   client,
		options:  options,
		lifetime: lifetime,
		cancel:   cancel,
		state:    State[T]{Data: options.InitialData},
	}
}

func (r *Requester[T]) State() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	snapshot := r.state
	if r.state.Status != nil {
		status := *r.state.Status
		snapshot.Status = &status
	}
	return snapshot
}

func (r *Requester[T]) Request(ctx context.Context, endpoint string, options RequestOptions) apiclient.Response[T] {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return apiclient.Response[T]{Error: constvars.ErrClientRequestCancelled, Code: constvars.ErrCodeRequestCancelled}
	}
	r.seq++
	seq := r.seq
	r.state.IsLoading = true
	r.state.Error = ""
	r.mu.Unlock()

	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(r.lifetime, cancel)
	defer stop()

	response := r.dispatch(callCtx, endpoint, options)

	r.mu.Lock()
	if r.closed || (r.options.LatestOnly && seq != r.seq) {
		r.mu.Unlock()
		return response
	}
	status := response.Status
	r.state = State[T]{
		Data:      response.Data,
		Error:     response.Error,
		Status:    &status,
		IsLoading: false,
	}
	r.mu.Unlock()

	if response.Error == "" && response.Data != nil {
		if r.options.OnSuccess != nil {
			r.options.OnSuccess(response.Data)
		}
	} else if r.options.OnError != nil {
		r.options.OnError(response.Error, response.Status)
	}
	return response
}

func (r *Requester[T]) dispatch(ctx context.Context, endpoint string, options RequestOptions) apiclient.Response[T] {
	switch method := strings.ToUpper(options.Method); method {
	case "", http.MethodGet:
		return apiclient.Get[T](ctx, r.client, endpoint, options.Config)
	case http.MethodPost:
		return apiclient.Post[T](ctx, r.client, endpoint, options.Body, options.Config)
	case http.MethodPut:
		return apiclient.Put[T](ctx, r.client, endpoint, options.Body, options.Config)
	case http.MethodPatch:
		return apiclient.Patch[T](ctx, r.client, endpoint, options.Body, options.Config)
	case http.MethodDelete:
		return apiclient.Delete[T](ctx, r.client, endpoint, options.Config)
	default:
		return apiclient.Do[T](ctx, r.client, method, endpoint, options.Body, options.Config)
	}
}

func (r *Requester[T]) Get(ctx context.Context, endpoint string, config apiclient.RequestConfig) apiclient.Response[T] {
	return r.Request(ctx, endpoint, RequestOptions{Method: http.MethodGet, Config: config})
}

func (r *Requester[T]) Post(ctx context.Context, endpoint string, body interface{}, config apiclient.RequestConfig) apiclient.Response[T] {
	return r.Request(ctx, endpoint, RequestOptions{Method: http.MethodPost, Body: body, Config: config})
}

func (r *Requester[T]) Put(ctx context.Context, endpoint string, body interface{}, config apiclient.RequestConfig) apiclient.Response[T] {
	return r.Request(ctx, endpoint, RequestOptions{Method: http.MethodPut, Body: body, Config: config})
}

func (r *Requester[T]) Patch(ctx context.Context, endpoint string, body interface{}, config apiclient.RequestConfig) apiclient.Response[T] {
	return r.Request(ctx, endpoint, RequestOptions{Method: http.MethodPatch, Body: body, Config: config})
}

func (r *Requester[T]) Delete(ctx context.Context, endpoint string, config apiclient.RequestConfig) apiclient.Response[T] {
	return r.Request(ctx, endpoint, RequestOptions{Method: http.MethodDelete, Config: config})
}

// Reset discards results and returns to the initial data.
func (r *Requester[T]) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = State[T]{Data: r.options.InitialData}
}

// Close cancels in-flight calls. Later results no longer touch state or fire callbacks.
func (r *Requester[T]) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	r.cancel()
}
