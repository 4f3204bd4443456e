// Package clientid issues the anonymous client identifier cookie. The value
// is opaque: it is generated and handed out, never validated.
package clientid

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"concertflow/pkg/logger"
)

// CookieName is the cookie carrying the client identifier.
const CookieName = "clientId"

// Tracker records newly issued identifiers.
type Tracker interface {
	Track(ctx context.Context, id string) error
}

type ctxKey struct{}

// Issuer hands out identifiers to clients that arrive without one.
type Issuer struct {
	log     *logger.Logger
	tracker Tracker
	newID   func() string
}

// NewIssuer creates an Issuer. tracker may be nil.
func NewIssuer(log *logger.Logger, tracker Tracker) *Issuer {
	return &Issuer{log: log, tracker: tracker, newID: uuid.NewString}
}

// Issue returns the identifier carried by r. When r has none, a new one is
// generated and set on w, and issued is true.
func (i *Issuer) Issue(w http.ResponseWriter, r *http.Request) (id string, issued bool) {
	if c, err := r.Cookie(CookieName); err == nil {
		return c.Value, false
	}

	id = i.newID()
	http.SetCookie(w, &http.Cookie{Name: CookieName, Value: id, Path: "/", HttpOnly: true})
	i.log.Info(r.Context(), "generated client cookie", "client_id", id)

	if i.tracker != nil {
		if err := i.tracker.Track(r.Context(), id); err != nil {
			i.log.Warn(r.Context(), "track client", "client_id", id, "error", err)
		}
	}
	return id, true
}

// Middleware applies Issue before next runs and stores the identifier in the
// request context.
func (i *Issuer) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := i.Issue(w, r)
		ctx := context.WithValue(r.Context(), ctxKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the identifier stored by Middleware.
func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}
