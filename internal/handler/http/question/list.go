package question

import (
	"net/http"

	"qa-forum/internal/common/pagination"
	"qa-forum/internal/handler/http/respond"
	"qa-forum/internal/usecase/forum"
)

type ListHandler struct{ Svc *forum.Service }

// ServeHTTP lists questions, newest first.
// Accepts either count or an inclusive start/end pair.
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	views, err := h.Svc.ListQuestions(r.Context(), pagination.FromValues(r.URL.Query()))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	out := make([]DTO, 0, len(views))
	for _, v := range views {
		out = append(out, toDTO(v))
	}
	respond.JSON(w, http.StatusOK, out)
}
