// Package question serves the /questions collection and its items.
package question

import (
	"net/http"

	"qa-forum/internal/handler/http/respond"
	"qa-forum/internal/usecase/forum"
)

// Register registers the question routes with the given mux.
// Any other method on a question path is answered with 405 and an Allow header.
func Register(mux *http.ServeMux, svc *forum.Service) {
	mux.Handle("POST   /questions", CreateHandler{svc})
	mux.Handle("GET    /questions", ListHandler{svc})
	mux.Handle("/questions", respond.MethodNotAllowed(respond.AllowCollection))

	mux.Handle("GET    /questions/{qid}", GetHandler{svc})
	mux.Handle("PUT    /questions/{qid}", UpdateHandler{svc})
	mux.Handle("DELETE /questions/{qid}", DeleteHandler{svc})
	mux.Handle("/questions/{qid}", respond.MethodNotAllowed(respond.AllowItem))
}
