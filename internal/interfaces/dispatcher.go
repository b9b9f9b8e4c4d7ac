package interfaces

import "net/http"

// Dispatcher hands a request over to, or composes the output of, a resource
// registered under a name.
type Dispatcher interface {
	// Forward transfers the request entirely. The named resource owns the
	// response from that point on.
	Forward(w http.ResponseWriter, r *http.Request, name string) error

	// Include appends the body of the named resource to the current response.
	// Status and header changes made by the resource are discarded.
	Include(w http.ResponseWriter, r *http.Request, name string) error
}
