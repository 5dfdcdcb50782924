//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"discount-hub/internal/handler/api"
	"discount-hub/internal/usecase/commands"
	"discount-hub/tests/common/httptest"
	commandsmock "discount-hub/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockCtrl             *gomock.Controller
	mockDiscountCommands *commandsmock.MockDiscountCommands
	handler              *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockDiscountCommands = commandsmock.NewMockDiscountCommands(s.mockCtrl)
	s.handler = api.NewAdminHandler(nil, s.mockDiscountCommands, nil)

	s.router.POST("/admin/discounts/:id/disable", s.handler.DisableDiscount)
	s.router.POST("/admin/discounts/:id/enable", s.handler.EnableDiscount)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) TestDisableDiscount() {
	discountID := uuid.New()

	s.Run("success: returns 204 and flips the flag off", func() {
		s.mockDiscountCommands.EXPECT().
			SetEnabled(gomock.Any(), discountID, false).
			Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/admin/discounts/"+discountID.String()+"/disable", nil, "token")

		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("error: unknown discount returns 404", func() {
		s.mockDiscountCommands.EXPECT().
			SetEnabled(gomock.Any(), discountID, false).
			Return(commands.ErrDiscountNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/admin/discounts/"+discountID.String()+"/disable", nil, "token")

		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Discount not found")
	})

	s.Run("error: malformed id returns 400", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/admin/discounts/not-a-uuid/disable", nil, "token")

		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid discount ID format")
	})

	s.Run("error: storage failure returns 500", func() {
		s.mockDiscountCommands.EXPECT().
			SetEnabled(gomock.Any(), discountID, false).
			Return(errors.New("connection reset"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/admin/discounts/"+discountID.String()+"/disable", nil, "token")

		httptest.AssertErrorResponse(s.T(), w, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AdminHandlerTestSuite) TestEnableDiscount() {
	discountID := uuid.New()

	s.Run("success: returns 204 and flips the flag on", func() {
		s.mockDiscountCommands.EXPECT().
			SetEnabled(gomock.Any(), discountID, true).
			Return(nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			"/admin/discounts/"+discountID.String()+"/enable", nil, "token")

		s.Equal(http.StatusNoContent, w.Code)
	})
}
