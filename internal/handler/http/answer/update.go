package answer

import (
	"net/http"

	"qa-forum/internal/handler/http/request"
	"qa-forum/internal/handler/http/respond"
	"qa-forum/internal/usecase/forum"
)

type UpdateHandler struct{ Svc *forum.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req payload
	if err := request.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, err)
		return
	}

	err := h.Svc.UpdateAnswer(r.Context(), r.PathValue("qid"), r.PathValue("aid"), forum.BodyPatch{Body: req.Body})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.NoContent(w)
}
