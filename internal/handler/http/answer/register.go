// Package answer serves the answers nested under a question.
package answer

import (
	"net/http"

	"qa-forum/internal/handler/http/respond"
	"qa-forum/internal/usecase/forum"
)

// Register registers the answer routes with the given mux.
func Register(mux *http.ServeMux, svc *forum.Service) {
	mux.Handle("POST   /questions/{qid}/answers", CreateHandler{svc})
	mux.Handle("GET    /questions/{qid}/answers", ListHandler{svc})
	mux.Handle("/questions/{qid}/answers", respond.MethodNotAllowed(respond.AllowCollection))

	mux.Handle("GET    /questions/{qid}/answers/{aid}", GetHandler{svc})
	mux.Handle("PUT    /questions/{qid}/answers/{aid}", UpdateHandler{svc})
	mux.Handle("DELETE /questions/{qid}/answers/{aid}", DeleteHandler{svc})
	mux.Handle("/questions/{qid}/answers/{aid}", respond.MethodNotAllowed(respond.AllowItem))
}
