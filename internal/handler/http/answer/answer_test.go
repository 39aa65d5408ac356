package answer_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qa-forum/internal/handler/http/answer"
	"qa-forum/internal/infra/adapter/persistence/memory"
	"qa-forum/internal/usecase/forum"
)

/* ───────── helpers ───────── */

func newServer(t *testing.T) (*http.ServeMux, *forum.Service) {
	t.Helper()
	store := memory.NewStore()
	svc := &forum.Service{
		Questions: store.Questions(),
		Answers:   store.Answers(),
		Comments:  store.Comments(),
	}
	mux := http.NewServeMux()
	answer.Register(mux, svc)
	return mux, svc
}

func seedQuestions(t *testing.T, svc *forum.Service, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := svc.CreateQuestion(t.Context(), forum.QuestionInput{Title: "q", Body: "b"})
		require.NoError(t, err)
	}
}

func do(mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

/* ───────── tests ───────── */

func TestCreateHandler(t *testing.T) {
	mux, svc := newServer(t)
	seedQuestions(t, svc, 1)

	rr := do(mux, http.MethodPost, "/questions/1/answers", `{"body":"A1"}`)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/questions/1/answers/1", rr.Header().Get("Location"))

	// Leading zeros are accepted and the Location is canonical.
	rr = do(mux, http.MethodPost, "/questions/001/answers", `{"body":"A2"}`)
	assert.Equal(t, "/questions/1/answers/2", rr.Header().Get("Location"))
}

func TestCreateHandler_Errors(t *testing.T) {
	mux, svc := newServer(t)
	seedQuestions(t, svc, 1)

	assert.Equal(t, http.StatusNotFound, do(mux, http.MethodPost, "/questions/9/answers", `{"body":"A"}`).Code)
	// Missing parent wins over a missing body.
	assert.Equal(t, http.StatusNotFound, do(mux, http.MethodPost, "/questions/9/answers", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(mux, http.MethodPost, "/questions/1/answers", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(mux, http.MethodPost, "/questions/q/answers", `{"body":"A"}`).Code)
}

func TestGetHandler_CrossParent(t *testing.T) {
	mux, svc := newServer(t)
	seedQuestions(t, svc, 2)
	do(mux, http.MethodPost, "/questions/1/answers", `{"body":"A1"}`)

	rr := do(mux, http.MethodGet, "/questions/1/answers/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var got answer.DTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "A1", got.Body)
	assert.Zero(t, got.CommentsCount)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rr := do(mux, method, "/questions/2/answers/1", `{"body":"x"}`)
		assert.Equal(t, http.StatusNotFound, rr.Code, method)
		assert.Empty(t, rr.Body.String())
	}
}

func TestListHandler(t *testing.T) {
	mux, svc := newServer(t)
	seedQuestions(t, svc, 1)
	for _, body := range []string{"A1", "A2", "A3"} {
		do(mux, http.MethodPost, "/questions/1/answers", `{"body":"`+body+`"}`)
	}

	rr := do(mux, http.MethodGet, "/questions/1/answers?count=5", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var got []answer.DTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Len(t, got, 3)

	assert.Equal(t, http.StatusBadRequest, do(mux, http.MethodGet, "/questions/1/answers?start=2&end=1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(mux, http.MethodGet, "/questions/4/answers?start=2&end=1", "").Code)
}

func TestUpdateAndDelete(t *testing.T) {
	mux, svc := newServer(t)
	seedQuestions(t, svc, 1)
	do(mux, http.MethodPost, "/questions/1/answers", `{"body":"A1"}`)

	assert.Equal(t, http.StatusNoContent, do(mux, http.MethodPut, "/questions/1/answers/1", `{"body":"edited"}`).Code)
	var got answer.DTO
	require.NoError(t, json.Unmarshal(do(mux, http.MethodGet, "/questions/1/answers/1", "").Body.Bytes(), &got))
	assert.Equal(t, "edited", got.Body)

	tooLong := `{"body":"` + strings.Repeat("x", 1001) + `"}`
	assert.Equal(t, http.StatusBadRequest, do(mux, http.MethodPut, "/questions/1/answers/1", tooLong).Code)

	assert.Equal(t, http.StatusNoContent, do(mux, http.MethodDelete, "/questions/1/answers/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(mux, http.MethodGet, "/questions/1/answers/1", "").Code)
}

func TestMethodNotAllowed(t *testing.T) {
	mux, _ := newServer(t)

	rr := do(mux, http.MethodDelete, "/questions/1/answers", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "HEAD, GET, POST", rr.Header().Get("Allow"))

	rr = do(mux, http.MethodPost, "/questions/1/answers/1", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "HEAD, GET, PUT, DELETE", rr.Header().Get("Allow"))
}
