//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"hotel-backoffice/internal/handler/api"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/internal/pkg/errs"
	"hotel-backoffice/internal/usecase/queries"
	"hotel-backoffice/tests/common/httptest"
	"hotel-backoffice/tests/common/testutil"
	commandsmock "hotel-backoffice/tests/mock/commands"
	queriesmock "hotel-backoffice/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoomCommands
	mockQueries  *queriesmock.MockRoomQueries
	handler      *api.RoomHandler
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.handler = api.NewRoomHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/rooms", s.handler.Create)
	s.router.GET("/rooms", s.handler.List)
	s.router.GET("/rooms/:id", s.handler.Get)
	s.router.PATCH("/rooms/:id", s.handler.Update)
	s.router.DELETE("/rooms/:id", s.handler.Delete)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func roomView() *queries.RoomView {
	now := time.Now().UTC()
	return &queries.RoomView{
		ID:          uuid.New(),
		RoomNumber:  "205",
		RoomType:    "Deluxe",
		PricePerDay: "120.50",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (s *RoomHandlerTestSuite) TestCreate() {
	url := "/rooms"
	view := roomView()
	reqBody := map[string]any{"room_number": "205", "room_type": "Deluxe", "price_per_day": "120.50"}

	s.Run("success: returns 201 Created with the room", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(view.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("205", response.RoomNumber)
		s.Equal("120.50", response.PricePerDay)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing room_number", mutate: testutil.Field("room_number", nil)},
			{name: "room_number too long", mutate: testutil.Field("room_number", strings.Repeat("9", 51))},
			{name: "unknown room_type", mutate: testutil.Field("room_type", "Suite")},
			{name: "missing price_per_day", mutate: testutil.Field("price_per_day", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 422 when the room number is taken", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrRoomNumberTaken).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "already taken")
	})

	s.Run("error: 422 when the rate cannot be parsed", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrDomainValidation).Times(1)
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("price_per_day", "12.3.4"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Validation failed")
	})
}

func (s *RoomHandlerTestSuite) TestGet() {
	view := roomView()
	url := "/rooms/" + view.ID.String()

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, errs.ErrRoomNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

func (s *RoomHandlerTestSuite) TestUpdate() {
	view := roomView()
	url := "/rooms/" + view.ID.String()

	s.Run("success: partial update returns the refreshed room", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), view.ID, gomock.Any()).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"price_per_day": "99.99"})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on a room_type outside the enum", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"room_type": "Penthouse"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *RoomHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/rooms/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(errs.ErrRoomNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}
