package dispatch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
)

type forwardedURIKey struct{}

type includedResourceKey struct{}

// Dispatcher routes requests to resources registered by name.
type Dispatcher struct {
	mu        sync.RWMutex
	resources map[string]http.Handler
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		resources: make(map[string]http.Handler),
	}
}

// Register makes handler reachable under name.
func (d *Dispatcher) Register(name string, handler http.Handler) error {
	if name == "" || handler == nil {
		return fmt.Errorf("%w: name and handler are required", ErrInvalidResource)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, exists := d.resources[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateResource, name)
	}
	d.resources[name] = handler
	return nil
}

// Forward serves the request with the named resource. The original request URI
// is kept in the request context, see ForwardedRequestURI. When name is a path
// the forwarded request's URL path is set to it.
func (d *Dispatcher) Forward(w http.ResponseWriter, r *http.Request, name string) error {
	handler, err := d.lookup(name)
	if err != nil {
		return err
	}

	ctx := context.WithValue(r.Context(), forwardedURIKey{}, r.URL.RequestURI())
	forwarded := r.Clone(ctx)
	if strings.HasPrefix(name, "/") {
		forwarded.URL.Path = name
		forwarded.URL.RawPath = ""
	}

	handler.ServeHTTP(w, forwarded)
	return nil
}

// Include writes the body produced by the named resource into w.
func (d *Dispatcher) Include(w http.ResponseWriter, r *http.Request, name string) error {
	handler, err := d.lookup(name)
	if err != nil {
		return err
	}

	ctx := context.WithValue(r.Context(), includedResourceKey{}, name)
	handler.ServeHTTP(newIncludeWriter(w), r.WithContext(ctx))
	return nil
}

func (d *Dispatcher) lookup(name string) (http.Handler, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	handler, ok := d.resources[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, name)
	}
	return handler, nil
}

// ForwardedRequestURI returns the request URI seen before a Forward.
func ForwardedRequestURI(ctx context.Context) (string, bool) {
	uri, ok := ctx.Value(forwardedURIKey{}).(string)
	return uri, ok
}

// IncludedResource reports the resource name when a handler runs as part of an Include.
func IncludedResource(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(includedResourceKey{}).(string)
	return name, ok
}
