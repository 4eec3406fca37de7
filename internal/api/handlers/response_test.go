package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConflict(rec, "slot taken")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "slot taken", body.Error)
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ana"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "Ana", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ana","extra":1}`))
	assert.Error(t, DecodeJSON(r, &dst))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Ana"}{"name":"Bia"}`))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestQueryHelpers(t *testing.T) {
	id := uuid.New()
	r := httptest.NewRequest(http.MethodGet, "/?professionalId="+id.String()+"&date=2026-10-19&includeInactive=true&days=7&bad=x", nil)

	got, err := QueryUUID(r, "professionalId")
	require.NoError(t, err)
	assert.Equal(t, id, *got)

	missing, err := QueryUUID(r, "serviceId")
	require.NoError(t, err)
	assert.Nil(t, missing)

	date, err := QueryDate(r, "date")
	require.NoError(t, err)
	assert.Equal(t, 19, date.Day())

	b, err := QueryBool(r, "includeInactive")
	require.NoError(t, err)
	assert.True(t, b)

	n, err := QueryInt(r, "days")
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = QueryInt(r, "bad")
	assert.Error(t, err)
	_, err = QueryUUID(r, "bad")
	assert.Error(t, err)
}

func TestPathUUID(t *testing.T) {
	id := uuid.New()
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": id.String()})

	got, err := PathUUID(r, "id")
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestValidationMessage(t *testing.T) {
	sentinel := errors.New("invalid input data")

	assert.Equal(t, "openTime must be before closeTime",
		ValidationMessage(fmt.Errorf("%w: %v", sentinel, "openTime must be before closeTime"), sentinel))
	assert.Equal(t, "invalid input data", ValidationMessage(sentinel, sentinel))
}
