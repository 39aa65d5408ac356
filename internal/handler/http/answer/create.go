package answer

import (
	"net/http"

	"qa-forum/internal/handler/http/request"
	"qa-forum/internal/handler/http/respond"
	"qa-forum/internal/usecase/forum"
)

type CreateHandler struct{ Svc *forum.Service }

// ServeHTTP adds an answer to the question and answers 201 with its Location.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req payload
	if err := request.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	var in forum.BodyInput
	if req.Body != nil {
		in.Body = *req.Body
	}
	ref, err := h.Svc.CreateAnswer(r.Context(), r.PathValue("qid"), in)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.Created(w, ref.Path())
}
