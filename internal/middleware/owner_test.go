package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/alsabqon_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

type OwnerMiddlewareTestSuite struct {
	suite.Suite
	jwtSecret string
}

func (suite *OwnerMiddlewareTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
}

func (suite *OwnerMiddlewareTestSuite) newRouter(secret string) *gin.Engine {
	r := gin.New()
	r.Use(middleware.OwnerMiddleware(secret, "default_user"))
	r.GET("/whoami", func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.String(http.StatusInternalServerError, "missing")
			return
		}
		c.String(http.StatusOK, userID)
	})
	return r
}

func (suite *OwnerMiddlewareTestSuite) signedToken(secret, subject string, expiresIn time.Duration) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "alsabqon-test",
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	suite.Require().NoError(err)
	return signed
}

func (suite *OwnerMiddlewareTestSuite) do(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/whoami", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func (suite *OwnerMiddlewareTestSuite) TestNoSecretUsesDefaultUser() {
	w := suite.do(suite.newRouter(""), "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("default_user", w.Body.String())
}

func (suite *OwnerMiddlewareTestSuite) TestValidTokenSetsSubject() {
	token := suite.signedToken(suite.jwtSecret, "user-42", time.Hour)
	w := suite.do(suite.newRouter(suite.jwtSecret), "Bearer "+token)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("user-42", w.Body.String())
}

func (suite *OwnerMiddlewareTestSuite) TestRejectedRequests() {
	testCases := []struct {
		name       string
		authHeader string
		wantBody   string
	}{
		{"missing header", "", "Authorization header required"},
		{"wrong scheme", "Basic abc", "Authorization header format must be Bearer {token}"},
		{"garbage token", "Bearer not-a-jwt", "Invalid token"},
		{"wrong secret", "Bearer " + suite.signedToken("another-secret", "user-42", time.Hour), "Invalid token"},
		{"expired", "Bearer " + suite.signedToken(suite.jwtSecret, "user-42", -time.Hour), "Token has expired"},
		{"no subject", "Bearer " + suite.signedToken(suite.jwtSecret, "", time.Hour), "Invalid token claims"},
	}
	r := suite.newRouter(suite.jwtSecret)
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			w := suite.do(r, tc.authHeader)
			suite.Equal(http.StatusUnauthorized, w.Code)
			suite.Contains(w.Body.String(), tc.wantBody)
		})
	}
}

func TestOwnerMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(OwnerMiddlewareTestSuite))
}
