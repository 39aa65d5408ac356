package comment

import (
	"net/http"

	"qa-forum/internal/handler/http/respond"
	"qa-forum/internal/usecase/forum"
)

type GetHandler struct{ Svc *forum.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	view, err := h.Svc.GetComment(r.Context(), parentOf(r), r.PathValue("cid"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(view))
}
