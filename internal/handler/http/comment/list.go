package comment

import (
	"net/http"

	"qa-forum/internal/common/pagination"
	"qa-forum/internal/handler/http/respond"
	"qa-forum/internal/usecase/forum"
)

type ListHandler struct{ Svc *forum.Service }

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	views, err := h.Svc.ListComments(r.Context(), parentOf(r), pagination.FromValues(r.URL.Query()))
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
