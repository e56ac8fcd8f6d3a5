package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarmyne/otpauth/internal/pkg/models"
)

func TestGetUserAccount_Success(t *testing.T) {
	accountID := uuid.New()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/233200000000", r.URL.Path)

		json.NewEncoder(w).Encode(models.AccountResult{
			Code:    http.StatusOK,
			Message: "success",
			Data: &models.UserAccount{
				ID:     accountID,
				MSISDN: "233200000000",
				Status: "active",
			},
		})
	}))
	defer server.Close()

	gw := NewAccountGW(models.AccountsConfig{BaseURL: server.URL, Timeout: 2})

	result, err := gw.GetUserAccount(context.Background(), "233200000000")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.Code)
	require.NotNil(t, result.Data)
	assert.Equal(t, accountID, result.Data.ID)
}

func TestGetUserAccount_NonSuccessCodePassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(models.AccountResult{
			Code:    http.StatusNotFound,
			Message: "not found",
		})
	}))
	defer server.Close()

	gw := NewAccountGW(models.AccountsConfig{BaseURL: server.URL, Timeout: 2})

	result, err := gw.GetUserAccount(context.Background(), "233200000000")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, result.Code)
	assert.Equal(t, "not found", result.Message)
	assert.Nil(t, result.Data)
}

func TestGetUserAccount_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not-json"))
	}))
	defer server.Close()

	gw := NewAccountGW(models.AccountsConfig{BaseURL: server.URL, Timeout: 2})

	_, err := gw.GetUserAccount(context.Background(), "233200000000")
	assert.Error(t, err)
}

func TestGetUserAccount_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	gw := NewAccountGW(models.AccountsConfig{BaseURL: server.URL, Timeout: 2})

	_, err := gw.GetUserAccount(context.Background(), "233200000000")
	assert.Error(t, err)
}
