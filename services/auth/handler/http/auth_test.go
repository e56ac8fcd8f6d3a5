package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/quarmyne/otpauth/internal/pkg/jwt"
	"github.com/quarmyne/otpauth/internal/pkg/middleware"
	"github.com/quarmyne/otpauth/internal/pkg/models"
	"github.com/quarmyne/otpauth/services/auth/mocks"
)

func setupHandler(t *testing.T) (*AuthHandler, *mocks.MockAuthUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockAuthUC(ctrl)
	return NewAuthHandler(mockUC), mockUC
}

func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequestOTP_Success(t *testing.T) {
	h, mockUC := setupHandler(t)

	mockUC.EXPECT().
		RequestOtpCode(gomock.Any(), "233200000000").
		Return(models.Success("OTP sent successfully", &models.OtpIssuedData{
			Prefix:           "ABCD",
			RequestID:        "r1",
			ExpiresInMinutes: 5,
		}))

	c, rec := newJSONContext(http.MethodPost, "/auth/otp", `{"msisdn":"233200000000"}`)

	require.NoError(t, h.RequestOTP(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"request_id":"r1"`)
	// The raw numeric code never appears in the issuance response
	assert.NotContains(t, rec.Body.String(), "654321")
}

func TestRequestOTP_MissingMSISDN(t *testing.T) {
	h, _ := setupHandler(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/otp", `{}`)

	require.NoError(t, h.RequestOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestOTP_MalformedBody(t *testing.T) {
	h, _ := setupHandler(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/otp", `{not-json`)

	require.NoError(t, h.RequestOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestOTP_UpstreamCodeMapsToStatus(t *testing.T) {
	h, mockUC := setupHandler(t)

	mockUC.EXPECT().
		RequestOtpCode(gomock.Any(), "233200000000").
		Return(models.Upstream(404, "not found"))

	c, rec := newJSONContext(http.MethodPost, "/auth/otp", `{"msisdn":"233200000000"}`)

	require.NoError(t, h.RequestOTP(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"not found"`)
}

func TestVerifyOTP_Success(t *testing.T) {
	h, mockUC := setupHandler(t)

	mockUC.EXPECT().
		VerifyOtpCode(gomock.Any(), "233200000000", gomock.Any()).
		DoAndReturn(func(_ interface{}, _ string, req *models.VerifyOtpRequest) *models.Result {
			assert.Equal(t, "r1", req.RequestID)
			assert.Equal(t, 654321, req.Code)
			assert.Equal(t, "ABCD", req.Prefix)
			return models.Success("OTP verified successfully", &models.AuthData{
				BearerToken: "token",
				ExpiresAt:   1700000000,
			})
		})

	body := `{"msisdn":"233200000000","request_id":"r1","code":654321,"prefix":"ABCD"}`
	c, rec := newJSONContext(http.MethodPost, "/auth/otp/verify", body)

	require.NoError(t, h.VerifyOTP(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"bearer_token":"token"`)
}

func TestVerifyOTP_ValidationFailure(t *testing.T) {
	h, mockUC := setupHandler(t)

	mockUC.EXPECT().
		VerifyOtpCode(gomock.Any(), "233200000000", gomock.Any()).
		Return(models.BadRequest("Incorrect authentication code"))

	body := `{"msisdn":"233200000000","request_id":"r1","code":111111,"prefix":"ABCD"}`
	c, rec := newJSONContext(http.MethodPost, "/auth/otp/verify", body)

	require.NoError(t, h.VerifyOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Incorrect authentication code")
}

func TestVerifyOTP_MissingRequestID(t *testing.T) {
	h, _ := setupHandler(t)

	c, rec := newJSONContext(http.MethodPost, "/auth/otp/verify", `{"msisdn":"233200000000"}`)

	require.NoError(t, h.VerifyOTP(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func sessionTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:   "test-secret",
		Issuer:   "otp-auth",
		Audience: "api-clients",
	}
}

// setupSessionServer wires the session route behind the JWT middleware the
// way the routes file does, so requests run the full validation path.
func setupSessionServer(t *testing.T, cfg models.JWTConfig) *echo.Echo {
	h, _ := setupHandler(t)

	e := echo.New()
	protected := e.Group("/auth", middleware.JWT(cfg))
	protected.GET("/session", h.Session)
	return e
}

func TestSession_ValidToken(t *testing.T) {
	cfg := sessionTestConfig()
	e := setupSessionServer(t, cfg)

	account := &models.UserAccount{
		ID:       uuid.New(),
		MSISDN:   "233200000000",
		FullName: "Ama Mensah",
		Status:   "active",
	}
	token, _, err := jwtpkg.GenerateToken(account, cfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Session is active"`)
	assert.Contains(t, rec.Body.String(), `"msisdn":"233200000000"`)
	assert.Contains(t, rec.Body.String(), account.ID.String())
}

func TestSession_MissingToken(t *testing.T) {
	e := setupSessionServer(t, sessionTestConfig())

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSession_GarbageToken(t *testing.T) {
	e := setupSessionServer(t, sessionTestConfig())

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSession_TokenSignedWithOtherKey(t *testing.T) {
	cfg := sessionTestConfig()
	e := setupSessionServer(t, cfg)

	otherCfg := cfg
	otherCfg.Secret = "other-secret"
	token, _, err := jwtpkg.GenerateToken(&models.UserAccount{MSISDN: "233200000000"}, otherCfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSession_NoClaimsOnContext(t *testing.T) {
	// Reaching the handler without the middleware having set claims
	// resolves to the 401 envelope rather than a panic.
	h, _ := setupHandler(t)

	c, rec := newJSONContext(http.MethodGet, "/auth/session", "")

	require.NoError(t, h.Session(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
