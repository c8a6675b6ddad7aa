package stores

import (
	"context"
	"errors"
	"medadmin-service/internal/client/apiclient"
	"medadmin-service/internal/pkg/constvars"
	"medadmin-service/internal/pkg/utils"
	"net/url"
	"sync"

	"go.uber.org/zap"
)

type Entity interface {
	GetID() string
}

// Store is the action surface shared by every domain store. State is only
// reachable through copies.
type Store[T Entity] interface {
	FetchAll(ctx context.Context) error
	FetchByID(ctx context.Context, id string) error
	Add(ctx context.Context, input interface{}) (*T, error)
	Update(ctx context.Context, id string, patch interface{}) (*T, error)
	Remove(ctx context.Context, id string) error
	SelectItem(id *string)
	Items() []T
	Selected() *T
	IsLoading() bool
	Error() string
}

// ResourceStore keeps one collection of a REST resource in sync with the server.
// Failed calls record the error and leave the previous state untouched.
type ResourceStore[T Entity] struct {
	Client   *apiclient.Client
	Log      *zap.Logger
	Endpoint string

	// writer serializes mutations.
	writer sync.Mutex

	mu       sync.RWMutex
	items    []T
	selected *T
	inFlight int
	err      string
}

func NewResourceStore[T Entity](client *apiclient.Client, endpoint string, logger *zap.Logger) *ResourceStore[T] {
	return &ResourceStore[T]{
		Client:   client,
		Log:      logger,
		Endpoint: endpoint,
	}
}

func (s *ResourceStore[T]) FetchAll(ctx context.Context) error {
	return s.fetchList(ctx, apiclient.RequestConfig{})
}

func (s *ResourceStore[T]) fetchList(ctx context.Context, cfg apiclient.RequestConfig) error {
	s.begin()
	response := apiclient.Get[[]T](ctx, s.Client, s.Endpoint, cfg)
	if err := response.Err(); err != nil {
		return s.fail(ctx, "FetchAll", err)
	}

	items := append([]T(nil), (*response.Data)...)
	s.mu.Lock()
	s.items = items
	s.finishLocked()
	s.mu.Unlock()
	return nil
}

func (s *ResourceStore[T]) FetchByID(ctx context.Context, id string) error {
	s.begin()
	response := apiclient.Get[T](ctx, s.Client, s.itemEndpoint(id), apiclient.RequestConfig{})
	if err := response.Err(); err != nil {
		return s.fail(ctx, "FetchByID", err)
	}

	item := *response.Data
	s.mu.Lock()
	s.selected = &item
	s.finishLocked()
	s.mu.Unlock()
	return nil
}

// Add appends the entity returned by the server, carrying its assigned id.
func (s *ResourceStore[T]) Add(ctx context.Context, input interface{}) (*T, error) {
	s.writer.Lock()
	defer s.writer.Unlock()

	s.begin()
	response := apiclient.Post[T](ctx, s.Client, s.Endpoint, input, apiclient.RequestConfig{})
	if err := response.Err(); err != nil {
		return nil, s.fail(ctx, "Add", err)
	}

	item := *response.Data
	s.mu.Lock()
	s.items = append(s.items, item)
	s.finishLocked()
	s.mu.Unlock()
	return &item, nil
}

func (s *ResourceStore[T]) Update(ctx context.Context, id string, patch interface{}) (*T, error) {
	s.writer.Lock()
	defer s.writer.Unlock()

	s.begin()
	response := apiclient.Patch[T](ctx, s.Client, s.itemEndpoint(id), patch, apiclient.RequestConfig{})
	if err := response.Err(); err != nil {
		return nil, s.fail(ctx, "Update", err)
	}

	item := *response.Data
	s.mu.Lock()
	s.replaceLocked(id, item)
	s.finishLocked()
	s.mu.Unlock()
	return &item, nil
}

func (s *ResourceStore[T]) Remove(ctx context.Context, id string) error {
	s.writer.Lock()
	defer s.writer.Unlock()

	s.begin()
	response := apiclient.Delete[struct{}](ctx, s.Client, s.itemEndpoint(id), apiclient.RequestConfig{})
	if err := response.Err(); err != nil {
		return s.fail(ctx, "Remove", err)
	}

	s.mu.Lock()
	kept := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if item.GetID() != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	if s.selected != nil && (*s.selected).GetID() == id {
		s.selected = nil
	}
	s.finishLocked()
	s.mu.Unlock()
	return nil
}

// SelectItem picks from the loaded collection only. Unknown ids and nil clear the selection.
func (s *ResourceStore[T]) SelectItem(id *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
	if id == nil {
		return
	}
	for _, item := range s.items {
		if item.GetID() == *id {
			found := item
			s.selected = &found
			return
		}
	}
}

func (s *ResourceStore[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]T(nil), s.items...)
}

func (s *ResourceStore[T]) Selected() *T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return nil
	}
	item := *s.selected
	return &item
}

func (s *ResourceStore[T]) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inFlight > 0
}

func (s *ResourceStore[T]) Error() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *ResourceStore[T]) replaceLocked(id string, item T) {
	for i := range s.items {
		if s.items[i].GetID() == id {
			s.items[i] = item
		}
	}
	if s.selected != nil && (*s.selected).GetID() == id {
		selected := item
		s.selected = &selected
	}
}

func (s *ResourceStore[T]) itemEndpoint(id string) string {
	return s.Endpoint + "/" + url.PathEscape(id)
}

func (s *ResourceStore[T]) begin() {
	s.mu.Lock()
	s.inFlight++
	s.err = ""
	s.mu.Unlock()
}

func (s *ResourceStore[T]) finishLocked() {
	if s.inFlight > 0 {
		s.inFlight--
	}
}

func (s *ResourceStore[T]) fail(ctx context.Context, operation string, err error) error {
	s.Log.Warn("resourceStore."+operation+" error",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingEndpointKey, s.Endpoint),
		zap.Error(err),
	)
	s.mu.Lock()
	s.err = errorMessage(err)
	s.finishLocked()
	s.mu.Unlock()
	return err
}

func errorMessage(err error) string {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
