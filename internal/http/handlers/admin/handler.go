package admin

import "github.com/dentora-store/internal/provider"

// Handler serves the back-office APIs.
type Handler struct {
	*provider.Container
}

// New creates the admin handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
