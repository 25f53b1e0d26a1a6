//go:build unit

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workshop-booking/internal/handler/api"
	"workshop-booking/internal/usecase/commands"
	"workshop-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubBookingCommands struct {
	createFn   func(ctx context.Context, params commands.CreateBookingParams) (uuid.UUID, error)
	confirmFn  func(ctx context.Context, bookingID, actorID uuid.UUID) error
	cancelFn   func(ctx context.Context, bookingID, actorID uuid.UUID) error
	completeFn func(ctx context.Context, bookingID, actorID uuid.UUID) error
}

func (s *stubBookingCommands) CreateBooking(ctx context.Context, params commands.CreateBookingParams) (uuid.UUID, error) {
	return s.createFn(ctx, params)
}

func (s *stubBookingCommands) ConfirmBooking(ctx context.Context, bookingID, actorID uuid.UUID) error {
	return s.confirmFn(ctx, bookingID, actorID)
}

func (s *stubBookingCommands) CancelBooking(ctx context.Context, bookingID, actorID uuid.UUID) error {
	return s.cancelFn(ctx, bookingID, actorID)
}

func (s *stubBookingCommands) CompleteBooking(ctx context.Context, bookingID, actorID uuid.UUID) error {
	return s.completeFn(ctx, bookingID, actorID)
}

type stubBookingQueries struct {
	getFn             func(ctx context.Context, id uuid.UUID) (*queries.BookingView, error)
	listForWorkshopFn func(ctx context.Context, workshopID, actorID uuid.UUID) ([]*queries.BookingView, error)
	listForUserFn     func(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error)
}

func (s *stubBookingQueries) GetByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	return s.getFn(ctx, id)
}

func (s *stubBookingQueries) ListForWorkshop(ctx context.Context, workshopID, actorID uuid.UUID) ([]*queries.BookingView, error) {
	return s.listForWorkshopFn(ctx, workshopID, actorID)
}

func (s *stubBookingQueries) ListForUser(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	return s.listForUserFn(ctx, userID)
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	commands *stubBookingCommands
	queries  *stubBookingQueries
	userID   uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.commands = &stubBookingCommands{}
	s.queries = &stubBookingQueries{}
	handler := api.NewBookingHandler(s.commands, s.queries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", "customer")
		c.Next()
	}

	s.router.POST("/api/services/:serviceId/bookings", authMiddleware, handler.CreateBooking)
	s.router.GET("/api/bookings", authMiddleware, handler.GetUserBookings)
	s.router.GET("/api/bookings/:id", authMiddleware, handler.GetBooking)
	s.router.POST("/api/bookings/:id/confirm", authMiddleware, handler.ConfirmBooking)
	s.router.POST("/api/bookings/:id/cancel", authMiddleware, handler.CancelBooking)
	s.router.GET("/api/workshops/:workshopId/bookings", authMiddleware, handler.GetWorkshopBookings)
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) request(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Authorization", "Bearer test-token")
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	serviceID := uuid.New()
	slotID := uuid.New()
	bookingID := uuid.New()

	cases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "created", err: nil, expectCode: http.StatusCreated},
		{name: "service not found", err: commands.ErrServiceNotFound, expectCode: http.StatusNotFound},
		{name: "slot not found", err: commands.ErrSlotNotFound, expectCode: http.StatusNotFound},
		{name: "workshop mismatch", err: commands.ErrWorkshopMismatch, expectCode: http.StatusUnprocessableEntity},
		{name: "slot too short", err: commands.ErrSlotTooShort, expectCode: http.StatusUnprocessableEntity},
		{name: "slot unavailable", err: commands.ErrSlotUnavailable, expectCode: http.StatusConflict},
		{name: "infrastructure failure", err: commands.ErrDatabaseOperationFailed, expectCode: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.commands.createFn = func(_ context.Context, params commands.CreateBookingParams) (uuid.UUID, error) {
				s.Equal(serviceID, params.ServiceID)
				s.Equal(slotID, params.SlotID)
				s.Equal(s.userID, params.UserID)
				if tc.err != nil {
					return uuid.Nil, tc.err
				}
				return bookingID, nil
			}

			w := s.request(http.MethodPost, "/api/services/"+serviceID.String()+"/bookings", gin.H{"slot_id": slotID})
			s.Equal(tc.expectCode, w.Code)

			if tc.err == nil {
				var resp struct {
					ID uuid.UUID `json:"id"`
				}
				s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
				s.Equal(bookingID, resp.ID)
			}
		})
	}
}

func (s *BookingHandlerTestSuite) TestCreateBookingBadRequest() {
	s.Run("invalid service id", func() {
		w := s.request(http.MethodPost, "/api/services/not-a-uuid/bookings", gin.H{"slot_id": uuid.New()})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("missing slot id", func() {
		w := s.request(http.MethodPost, "/api/services/"+uuid.New().String()+"/bookings", gin.H{})
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("unauthenticated", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/services/"+uuid.New().String()+"/bookings", nil)
		w := httptest.NewRecorder()
		s.router.ServeHTTP(w, req)
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	bookingID := uuid.New()
	view := &queries.BookingView{
		ID:        bookingID,
		UserID:    s.userID,
		Status:    "confirmed",
		StartTime: time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
	}

	s.Run("found", func() {
		s.queries.getFn = func(_ context.Context, id uuid.UUID) (*queries.BookingView, error) {
			s.Equal(bookingID, id)
			return view, nil
		}

		w := s.request(http.MethodGet, "/api/bookings/"+bookingID.String(), nil)
		s.Equal(http.StatusOK, w.Code)
		s.Contains(w.Body.String(), "confirmed")
	})

	s.Run("not found", func() {
		s.queries.getFn = func(_ context.Context, _ uuid.UUID) (*queries.BookingView, error) {
			return nil, queries.ErrBookingNotFound
		}

		w := s.request(http.MethodGet, "/api/bookings/"+uuid.New().String(), nil)
		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("invalid id", func() {
		w := s.request(http.MethodGet, "/api/bookings/not-a-uuid", nil)
		s.Equal(http.StatusBadRequest, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestConfirmBooking() {
	bookingID := uuid.New()

	cases := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "confirmed", err: nil, expectCode: http.StatusNoContent},
		{name: "not found", err: commands.ErrBookingNotFound, expectCode: http.StatusNotFound},
		{name: "not allowed", err: commands.ErrNotAllowed, expectCode: http.StatusForbidden},
		{name: "illegal transition", err: commands.ErrIllegalTransition, expectCode: http.StatusConflict},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.commands.confirmFn = func(_ context.Context, id, actorID uuid.UUID) error {
				s.Equal(bookingID, id)
				s.Equal(s.userID, actorID)
				return tc.err
			}

			w := s.request(http.MethodPost, "/api/bookings/"+bookingID.String()+"/confirm", nil)
			s.Equal(tc.expectCode, w.Code)
		})
	}
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	bookingID := uuid.New()

	s.Run("canceled", func() {
		s.commands.cancelFn = func(_ context.Context, id, actorID uuid.UUID) error {
			s.Equal(bookingID, id)
			return nil
		}

		w := s.request(http.MethodPost, "/api/bookings/"+bookingID.String()+"/cancel", nil)
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("already canceled", func() {
		s.commands.cancelFn = func(_ context.Context, _, _ uuid.UUID) error {
			return commands.ErrIllegalTransition
		}

		w := s.request(http.MethodPost, "/api/bookings/"+bookingID.String()+"/cancel", nil)
		s.Equal(http.StatusConflict, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestWorkshopBookings() {
	workshopID := uuid.New()

	s.Run("owner gets the list", func() {
		s.queries.listForWorkshopFn = func(_ context.Context, wID, actorID uuid.UUID) ([]*queries.BookingView, error) {
			s.Equal(workshopID, wID)
			s.Equal(s.userID, actorID)
			return []*queries.BookingView{{ID: uuid.New(), Status: "requested"}}, nil
		}

		w := s.request(http.MethodGet, "/api/workshops/"+workshopID.String()+"/bookings", nil)
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("non-owner is rejected", func() {
		s.queries.listForWorkshopFn = func(_ context.Context, _, _ uuid.UUID) ([]*queries.BookingView, error) {
			return nil, queries.ErrNotAllowed
		}

		w := s.request(http.MethodGet, "/api/workshops/"+workshopID.String()+"/bookings", nil)
		s.Equal(http.StatusForbidden, w.Code)
	})
}

func (s *BookingHandlerTestSuite) TestUserBookings() {
	s.queries.listForUserFn = func(_ context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
		s.Equal(s.userID, userID)
		return []*queries.BookingView{{ID: uuid.New()}, {ID: uuid.New()}}, nil
	}

	w := s.request(http.MethodGet, "/api/bookings", nil)
	s.Equal(http.StatusOK, w.Code)

	var resp []json.RawMessage
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp, 2)
}
