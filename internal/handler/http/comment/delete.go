package comment

import (
	"net/http"

	"qa-forum/internal/handler/http/respond"
	"qa-forum/internal/usecase/forum"
)

type DeleteHandler struct{ Svc *forum.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Svc.DeleteComment(r.Context(), parentOf(r), r.PathValue("cid")); err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.NoContent(w)
}
