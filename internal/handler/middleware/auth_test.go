//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"discount-hub/internal/domain/user"
	"discount-hub/internal/handler/middleware"
	"discount-hub/internal/pkg/jwt"
	"discount-hub/internal/usecase"
	"discount-hub/internal/usecase/queries"
	"discount-hub/tests/common/httptest"
	queriesmock "discount-hub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockUserQueries *queriesmock.MockUserQueries
	jwtService      *jwt.Service
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.jwtService = jwt.NewService("test-secret-key", time.Hour)

	authMiddleware := middleware.NewAuthMiddleware(
		usecase.NewTokenValidator(s.jwtService),
		s.mockUserQueries,
	)

	s.router.GET("/protected", authMiddleware.RequireAuth(), func(c *gin.Context) {
		subjectID, _ := middleware.GetSubjectID(c)
		role, _ := middleware.GetSubjectRole(c)
		c.JSON(http.StatusOK, gin.H{
			"subject_id": subjectID.String(),
			"role":       string(role),
		})
	})
}

func (s *AuthMiddlewareTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) token(subjectID uuid.UUID, role user.Role) string {
	token, err := s.jwtService.GenerateToken(subjectID, role)
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("error: missing Authorization header returns 401", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
		s.Contains(w.Body.String(), "Access token required")
	})

	s.Run("error: malformed token returns 401", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected", nil, "not-a-jwt")
		s.Equal(http.StatusUnauthorized, w.Code)
		s.Contains(w.Body.String(), "Invalid or expired token")
	})

	s.Run("success: active user passes and subject context is set", func() {
		subjectID := uuid.New()
		s.mockUserQueries.EXPECT().
			GetAuthorized(gomock.Any(), subjectID).
			Return(&queries.AuthorizedUserView{
				ID:       subjectID,
				Role:     string(user.RoleUser),
				IsActive: true,
			}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected",
			nil, s.token(subjectID, user.RoleUser))

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), subjectID.String())
		s.Contains(w.Body.String(), string(user.RoleUser))
	})

	s.Run("error: blocked user is rejected even with a valid token", func() {
		subjectID := uuid.New()
		s.mockUserQueries.EXPECT().
			GetAuthorized(gomock.Any(), subjectID).
			Return(&queries.AuthorizedUserView{
				ID:       subjectID,
				Role:     string(user.RoleUser),
				IsActive: false,
			}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected",
			nil, s.token(subjectID, user.RoleUser))

		s.Equal(http.StatusUnauthorized, w.Code)
		s.Contains(w.Body.String(), "blocked")
	})

	s.Run("error: deleted account is rejected", func() {
		subjectID := uuid.New()
		s.mockUserQueries.EXPECT().
			GetAuthorized(gomock.Any(), subjectID).
			Return(nil, errors.New("user not found"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected",
			nil, s.token(subjectID, user.RoleUser))

		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("success: brand token skips the account lookup", func() {
		subjectID := uuid.New()
		s.mockUserQueries.EXPECT().
			GetAuthorized(gomock.Any(), gomock.Any()).
			Times(0)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/protected",
			nil, s.token(subjectID, user.RoleBrand))

		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), string(user.RoleBrand))
	})
}
