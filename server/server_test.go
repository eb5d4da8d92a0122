package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func post(t *testing.T, handler http.Handler, request CommandRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(request)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body)))
	return recorder
}

func TestHandleCommand(t *testing.T) {
	recorder := post(t, Handler(), CommandRequest{
		BoardSize:   9,
		MoveList:    []string{"black E5", "white C3"},
		NextCommand: "final_score",
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	body, err := io.ReadAll(recorder.Body)
	require.NoError(t, err)
	require.Equal(t, "= W+6.5\n", string(body), "two lone stones leave only komi on the table")
}

func TestHandleCommandFailure(t *testing.T) {
	recorder := post(t, Handler(), CommandRequest{
		BoardSize:   9,
		NextCommand: "flip_table",
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	body, err := io.ReadAll(recorder.Body)
	require.NoError(t, err)
	require.Equal(t, "? unknown command\n", string(body))
}

func TestRejectsInvalidBoardSize(t *testing.T) {
	recorder := post(t, Handler(), CommandRequest{BoardSize: 10, NextCommand: "name"})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRejectsIllegalMoveInList(t *testing.T) {
	recorder := post(t, Handler(), CommandRequest{
		BoardSize:   9,
		MoveList:    []string{"black E5", "white E5"},
		NextCommand: "final_score",
	})
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRejectsMalformedBody(t *testing.T) {
	recorder := httptest.NewRecorder()
	Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("not json"))))
	require.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRejectsNonPost(t *testing.T) {
	recorder := httptest.NewRecorder()
	Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}
