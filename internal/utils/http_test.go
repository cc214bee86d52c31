package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fahim1105/seu-matrimony/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{
			name:     "send response",
			data:     models.ServerSendResponse{Success: true, Message: "sent", InsertedID: "r-1"},
			status:   http.StatusOK,
			wantBody: `{"success":true,"message":"sent","insertedId":"r-1"}`,
		},
		{
			name:     "custom status",
			data:     models.ServerMessage{Message: "missing"},
			status:   http.StatusNotFound,
			wantBody: `{"success":false,"message":"missing"}`,
		},
		{
			name:     "nil data",
			data:     nil,
			status:   http.StatusOK,
			wantBody: "null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)
			require.NoError(t, err)

			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusBadRequest, "request already exists", "REQUEST_ALREADY_EXISTS")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, ErrorBody{Message: "request already exists", Code: "REQUEST_ALREADY_EXISTS"}, body)
}

func TestWriteError_OmitsEmptyCode(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusServiceUnavailable, "down", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, `{"success":false,"message":"down"}`, w.Body.String())
}
