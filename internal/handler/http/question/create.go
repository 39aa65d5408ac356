package question

import (
	"net/http"

	"qa-forum/internal/handler/http/request"
	"qa-forum/internal/handler/http/respond"
	"qa-forum/internal/usecase/forum"
)

type CreateHandler struct{ Svc *forum.Service }

// ServeHTTP creates a question and answers 201 with its Location.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req payload
	if err := request.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	ref, err := h.Svc.CreateQuestion(r.Context(), forum.QuestionInput{
		Title: deref(req.Title),
		Body:  deref(req.Body),
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Created(w, ref.Path())
}
