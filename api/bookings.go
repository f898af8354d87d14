package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/Domenick1991/flightinventory/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type createBookingRequest struct {
	FlightID   int64  `json:"flight_id" binding:"required"`
	UserID     int64  `json:"user_id" binding:"required"`
	SeatClass  string `json:"seat_class" binding:"required"`
	TravelDate string `json:"travel_date" binding:"required"`
	SeatCount  int    `json:"seat_count" binding:"required"`
}

type bookingResponse struct {
	ID             string `json:"id"`
	FlightID       int64  `json:"flight_id"`
	UserID         int64  `json:"user_id"`
	SeatClass      string `json:"seat_class"`
	TravelDate     string `json:"travel_date"`
	SeatCount      int    `json:"seat_count"`
	GrossAmount    string `json:"gross_amount"`
	DiscountAmount string `json:"discount_amount"`
	NetAmount      string `json:"net_amount"`
	DiscountReason string `json:"discount_reason"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

type bookingDetailsResponse struct {
	bookingResponse
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	CarrierName string `json:"carrier_name"`
	Fare        string `json:"fare"`
}

type cancellationResponse struct {
	BookingID        string `json:"booking_id"`
	FlightID         int64  `json:"flight_id"`
	UserID           int64  `json:"user_id"`
	SeatClass        string `json:"seat_class"`
	TravelDate       string `json:"travel_date"`
	SeatCount        int    `json:"seat_count"`
	BookingAmount    string `json:"booking_amount"`
	RefundAmount     string `json:"refund_amount"`
	RefundPercentage string `json:"refund_percentage"`
	Status           string `json:"status"`
	Origin           string `json:"origin"`
	Destination      string `json:"destination"`
	CarrierName      string `json:"carrier_name"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("", h.create)
	router.GET("/:id", h.get)
	router.DELETE("/:id", h.cancel)
	router.POST("/:id/cancel", h.cancel)
}

func (h *BookingHandler) RegisterUserRoutes(router *gin.RouterGroup) {
	router.GET("/:id/bookings", h.listByUser)
}

func (h *BookingHandler) create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	class, err := domain.ParseSeatClass(req.SeatClass)
	if err != nil {
		writeError(c, err)
		return
	}
	travelDate, err := domain.ParseDate(req.TravelDate)
	if err != nil {
		writeError(c, err)
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), booking.CreateBookingInput{
		FlightID:   req.FlightID,
		UserID:     req.UserID,
		SeatClass:  class,
		TravelDate: travelDate,
		SeatCount:  req.SeatCount,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(created))
}

func (h *BookingHandler) get(c *gin.Context) {
	details, err := h.service.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDetailsResponse(details))
}

func (h *BookingHandler) cancel(c *gin.Context) {
	receipt, err := h.service.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, cancellationResponse{
		BookingID:        receipt.BookingID,
		FlightID:         receipt.FlightID,
		UserID:           receipt.UserID,
		SeatClass:        receipt.SeatClass.String(),
		TravelDate:       receipt.TravelDate.Format(domain.DateLayout),
		SeatCount:        receipt.SeatCount,
		BookingAmount:    receipt.BookingAmount.StringFixed(2),
		RefundAmount:     receipt.RefundAmount.StringFixed(2),
		RefundPercentage: receipt.RefundPercentage.StringFixed(2),
		Status:           string(receipt.Status),
		Origin:           receipt.Origin,
		Destination:      receipt.Destination,
		CarrierName:      receipt.CarrierName,
	})
}

func (h *BookingHandler) listByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user id"})
		return
	}
	list, err := h.service.ListUserBookings(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]bookingDetailsResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toDetailsResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func toBookingResponse(b *domain.Booking) bookingResponse {
	return bookingResponse{
		ID:             b.ID,
		FlightID:       b.FlightID,
		UserID:         b.UserID,
		SeatClass:      b.SeatClass.String(),
		TravelDate:     b.TravelDate.Format(domain.DateLayout),
		SeatCount:      b.SeatCount,
		GrossAmount:    b.GrossAmount.StringFixed(2),
		DiscountAmount: b.DiscountAmount.StringFixed(2),
		NetAmount:      b.NetAmount().StringFixed(2),
		DiscountReason: b.DiscountReason,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt.Format(time.RFC3339),
	}
}

func toDetailsResponse(d *domain.BookingDetails) bookingDetailsResponse {
	return bookingDetailsResponse{
		bookingResponse: toBookingResponse(&d.Booking),
		Origin:          d.Origin,
		Destination:     d.Destination,
		CarrierName:     d.CarrierName,
		Fare:            d.Fare.StringFixed(2),
	}
}
