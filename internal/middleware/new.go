package middleware

import (
	"psychoai/pkg/log"
)

// Middleware bundles the Gin middlewares shared by HTTP routes.
type Middleware struct {
	l           log.Logger
	internalKey string
}

// New creates the middleware set. An empty internalKey disables Auth.
func New(l log.Logger, internalKey string) Middleware {
	return Middleware{
		l:           l,
		internalKey: internalKey,
	}
}
