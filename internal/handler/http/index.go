package http

import (
	"net/http"

	"qa-forum/internal/handler/http/respond"
)

// IndexHandler answers GET / with the service name and version.
type IndexHandler struct {
	Name    string
	Version string
}

func (h IndexHandler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{
		"name":    h.Name,
		"version": h.Version,
	})
}
