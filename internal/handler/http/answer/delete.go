package answer

import (
	"net/http"

	"qa-forum/internal/handler/http/respond"
	"qa-forum/internal/usecase/forum"
)

type DeleteHandler struct{ Svc *forum.Service }

// ServeHTTP removes the answer and its comments.
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.DeleteAnswer(r.Context(), r.PathValue("qid"), r.PathValue("aid")); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.NoContent(w)
}
