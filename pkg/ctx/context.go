// Package ctx provides a single request context for RentalEase handlers.
//
// Instead of accepting (http.ResponseWriter, *http.Request), a handler
// receives a *Context with helpers for params, binding and responses:
//
//	func (h *HostingController) Show(c *ctx.Context) {
//	    hosting, err := h.svc.Get(c.Context(), c.Param("id"))
//	    if err != nil {
//	        c.Fail(err)
//	        return
//	    }
//	    c.Success(hosting)
//	}
//
//	router.Get("/hosting/{id}", "hosting.show", ctx.Wrap(h.Show))
package ctx

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/rentalease/pkg/apperror"
	"github.com/shashiranjanraj/rentalease/pkg/auth"
	"github.com/shashiranjanraj/rentalease/pkg/bind"
	"github.com/shashiranjanraj/rentalease/pkg/logger"
	"github.com/shashiranjanraj/rentalease/pkg/middleware"
	"github.com/shashiranjanraj/rentalease/pkg/response"
)

// HandlerFunc is the context-aware handler signature.
type HandlerFunc func(c *Context)

// Wrap converts a HandlerFunc to a standard http.HandlerFunc.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := acquire(w, r)
		defer release(c)
		h(c)
	}
}

// Context wraps a request/response pair.
type Context struct {
	W http.ResponseWriter
	R *http.Request
}

var pool = sync.Pool{
	New: func() any { return &Context{} },
}

func acquire(w http.ResponseWriter, r *http.Request) *Context {
	c := pool.Get().(*Context)
	c.W = w
	c.R = r
	return c
}

func release(c *Context) {
	c.W = nil
	c.R = nil
	pool.Put(c)
}

// ─── Request helpers ──────────────────────────────────────────────────────────

// Param returns a URL path parameter.
func (c *Context) Param(key string) string {
	return chi.URLParam(c.R, key)
}

func (c *Context) Context() context.Context { return c.R.Context() }

// Principal returns the authenticated caller placed on the request by
// middleware.Authenticate.
func (c *Context) Principal() (auth.Principal, bool) {
	return middleware.PrincipalFromCtx(c.R)
}

// ─── Binding ──────────────────────────────────────────────────────────────────

// DecodeJSON decodes the JSON body into dest without validating it, for
// handlers whose service validates. On failure it writes a 400.
func (c *Context) DecodeJSON(dest any) bool {
	if err := bind.Decode(c.R, dest); err != nil {
		c.Error(http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// ─── Response helpers ─────────────────────────────────────────────────────────

func (c *Context) SetCookie(cookie *http.Cookie) {
	http.SetCookie(c.W, cookie)
}

func (c *Context) JSON(code int, v any) {
	response.JSON(c.W, code, v)
}

func (c *Context) Success(data any) { c.JSON(http.StatusOK, data) }

// String writes a plain-text response.
func (c *Context) String(code int, format string, args ...any) {
	c.W.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.W.WriteHeader(code)
	fmt.Fprintf(c.W, format, args...)
}

func (c *Context) Created(data any) { c.JSON(http.StatusCreated, data) }

func (c *Context) Error(code int, message string) {
	c.JSON(code, response.ErrorBody{Status: code, Error: message})
}

// Fail maps err onto its HTTP status. Internal failures are logged with the
// request's logger and the client only sees the safe message.
func (c *Context) Fail(err error) {
	appErr := apperror.From(err)
	status := appErr.Kind.Status()

	if appErr.Kind == apperror.KindInternal {
		logger.WithCtx(c.Context()).Error("request failed",
			"method", c.R.Method,
			"path", c.R.URL.Path,
			"error", fmt.Sprint(appErr.Err),
		)
	}

	c.JSON(status, response.ErrorBody{
		Status: status,
		Error:  appErr.Message,
		Errors: appErr.Fields,
	})
}
