package question

import (
	"net/http"

	"qa-forum/internal/handler/http/respond"
	"qa-forum/internal/usecase/forum"
)

type GetHandler struct{ Svc *forum.Service }

// ServeHTTP returns the question with its counts.
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	view, err := h.Svc.GetQuestion(r.Context(), r.PathValue("qid"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(view))
}
