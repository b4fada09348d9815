package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ADITYAKUMARSINGH16/ai-judicial/api/handlers"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/models"
	"github.com/ADITYAKUMARSINGH16/ai-judicial/stores"
)

func TestPrincipal_SignupHandler(t *testing.T) {
	p := handlers.Principal{Directory: stores.NewDirectory()}

	body := bytes.NewBufferString(`{"name": "Saul", "role": "Lawyer", "password": "callme"}`)
	req, err := http.NewRequest("POST", "/api/v1/signup", body)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	http.HandlerFunc(p.SignupHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var got models.Principal
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "Saul", got.Name)
	assert.Equal(t, models.RoleLawyer, got.Role)
	assert.NotContains(t, rr.Body.String(), "callme", "credential must not leak")
}

func TestPrincipal_SignupHandlerDuplicate(t *testing.T) {
	d := stores.NewDirectory()
	_, err := d.Register("Saul", models.RoleLawyer, "callme")
	require.NoError(t, err)

	p := handlers.Principal{Directory: d}

	body := bytes.NewBufferString(`{"name": "SAUL", "role": "Judge", "password": "other"}`)
	req, err := http.NewRequest("POST", "/api/v1/signup", body)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	http.HandlerFunc(p.SignupHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestPrincipal_SignupHandlerUnknownRole(t *testing.T) {
	p := handlers.Principal{Directory: stores.NewDirectory()}

	body := bytes.NewBufferString(`{"name": "Saul", "role": "Wizard", "password": "pw"}`)
	req, err := http.NewRequest("POST", "/api/v1/signup", body)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	http.HandlerFunc(p.SignupHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestPrincipal_LoginHandler(t *testing.T) {
	d := stores.NewDirectory()
	_, err := d.Register("Judge Judy", models.RoleJudge, "judgepass")
	require.NoError(t, err)

	p := handlers.Principal{Directory: d}

	body := bytes.NewBufferString(`{"name": "JUDGE JUDY", "password": "judgepass"}`)
	req, err := http.NewRequest("POST", "/api/v1/login", body)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	http.HandlerFunc(p.LoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got models.Principal
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "Judge Judy", got.Name)
	assert.Equal(t, models.RoleJudge, got.Role)
}

func TestPrincipal_LoginHandlerWrongPassword(t *testing.T) {
	d := stores.NewDirectory()
	_, err := d.Register("Judge Judy", models.RoleJudge, "judgepass")
	require.NoError(t, err)

	p := handlers.Principal{Directory: d}

	body := bytes.NewBufferString(`{"name": "Judge Judy", "password": "wrong"}`)
	req, err := http.NewRequest("POST", "/api/v1/login", body)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	http.HandlerFunc(p.LoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.NotContains(t, rr.Body.String(), "password", "response must not say which part mismatched")
}
