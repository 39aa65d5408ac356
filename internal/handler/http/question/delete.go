package question

import (
	"net/http"

	"qa-forum/internal/handler/http/respond"
	"qa-forum/internal/usecase/forum"
)

type DeleteHandler struct{ Svc *forum.Service }

// ServeHTTP removes the question with all of its answers and comments.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.DeleteQuestion(r.Context(), r.PathValue("qid")); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.NoContent(w)
}
