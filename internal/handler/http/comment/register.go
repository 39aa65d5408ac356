// Package comment serves comments at both nesting levels:
// /questions/{qid}/comments and /questions/{qid}/answers/{aid}/comments.
// The same handlers serve both; an absent {aid} selects the question level.
package comment

import (
	"net/http"

	"qa-forum/internal/handler/http/respond"
	"qa-forum/internal/usecase/forum"
)

var prefixes = []string{
	"/questions/{qid}/comments",
	"/questions/{qid}/answers/{aid}/comments",
}

// Register registers the comment routes for both parents with the given mux.
func Register(mux *http.ServeMux, svc *forum.Service) {
	for _, p := range prefixes {
		mux.Handle("POST   "+p, CreateHandler{svc})
		mux.Handle("GET    "+p, ListHandler{svc})
		mux.Handle(p, respond.MethodNotAllowed(respond.AllowCollection))

		item := p + "/{cid}"
		mux.Handle("GET    "+item, GetHandler{svc})
		mux.Handle("PUT    "+item, UpdateHandler{svc})
		mux.Handle("DELETE "+item, DeleteHandler{svc})
		mux.Handle(item, respond.MethodNotAllowed(respond.AllowItem))
	}
}

func parentOf(r *http.Request) forum.ParentPath {
	return forum.ParentPath{
		QuestionID: r.PathValue("qid"),
		AnswerID:   r.PathValue("aid"),
	}
}
