package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kessoku/config"
	"kessoku/models"
	"kessoku/utils"
)

func testToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   "user-1",
		"email": "bocchi@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *utils.AuthSession) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config.AppConfig = config.Config{
		APIHost:            server.URL,
		APIPrefix:          "",
		HTTPTimeoutSeconds: 5,
		RateLimitRPS:       100,
		RateLimitBurst:     100,
	}
	session := utils.NewAuthSession()
	return NewClient(session), session
}

func TestGetStoresSendsFiltersAndHeaders(t *testing.T) {
	var gotRequestID, gotAuth string
	client, session := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/public/stores", r.URL.Path)
		assert.Equal(t, "C01", r.URL.Query().Get("city"))
		assert.Equal(t, "DRUMS", r.URL.Query().Get("instrument"))
		gotRequestID = r.Header.Get("X-Request-ID")
		gotAuth = r.Header.Get("Authorization")

		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"stores": []models.Store{{ID: "S1", Name: "Starry"}},
			},
		})
	}))

	token := testToken(t)
	require.NoError(t, session.SetToken(token))

	stores, err := client.GetStores(context.Background(), "C01", "DRUMS")
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "Starry", stores[0].Name)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "Bearer "+token, gotAuth)
}

func TestGetStoresOmitsEmptyFilters(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("city"))
		assert.False(t, r.URL.Query().Has("instrument"))
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"stores": []models.Store{}}})
	}))

	_, err := client.GetStores(context.Background(), "", "")
	require.NoError(t, err)
}

func TestServerMessageSurfacesAsAPIError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"message": "store does not exist"})
	}))

	_, err := client.GetStoreInfo(context.Background(), "nope")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "store does not exist", apiErr.Error())
	assert.True(t, IsNotFound(err))
	assert.False(t, IsUnauthorized(err))
}

func TestUnauthorizedWithoutBody(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := client.GetProfile(context.Background())
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
}

func TestSubmitBookingPostsDraftPayload(t *testing.T) {
	var got models.BookRequest
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/book", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"bookIds": []string{"B1", "B2"}},
		})
	}))

	req := models.BookRequest{BookContents: []models.BookContent{
		{ClassID: "C1", BookDate: "2024-03-20", Times: []string{"14:00", "15:00"}},
	}}
	result, err := client.SubmitBooking(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, []string{"B1", "B2"}, result.BookIDs)
	assert.Equal(t, req, got)
}

func TestGetClassOrders(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/public/classOrders/C1", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"data": []models.ClassOrder{{Date: "2024-03-20", TimeList: []string{"14:00"}}},
		})
	}))

	orders, err := client.GetClassOrders(context.Background(), "C1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "2024-03-20", orders[0].Date)
}

func TestCancelBooking(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/book/B1/cancel", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"message": "ok"})
	}))

	require.NoError(t, client.CancelBooking(context.Background(), "B1"))
}

func TestExpiredTokenIsNotSent(t *testing.T) {
	client, session := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"stores": []models.Store{}}})
	}))

	claims := jwt.MapClaims{"sub": "user-1", "exp": time.Now().Add(-time.Hour).Unix()}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	require.NoError(t, session.SetToken(expired))

	_, err = client.GetStores(context.Background(), "", "")
	require.NoError(t, err)
}
