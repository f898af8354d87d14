package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/Domenick1991/flightinventory/internal/service/booking"
	"github.com/gin-gonic/gin"
)

// InventoryHandler serves seat availability for a flight on a travel date.
type InventoryHandler struct {
	service booking.BookingUseCase
}

type availabilityResponse struct {
	FlightID   int64          `json:"flight_id"`
	TravelDate string         `json:"travel_date"`
	Capacity   map[string]int `json:"capacity"`
	Booked     map[string]int `json:"booked"`
	Available  map[string]int `json:"available"`
}

type classAvailabilityResponse struct {
	FlightID   int64  `json:"flight_id"`
	TravelDate string `json:"travel_date"`
	SeatClass  string `json:"seat_class"`
	Available  int    `json:"available"`
}

func NewInventoryHandler(service booking.BookingUseCase) *InventoryHandler {
	return &InventoryHandler{service: service}
}

func (h *InventoryHandler) Register(router *gin.RouterGroup) {
	router.GET("/:id/availability", h.availability)
}

// availability answers GET /flights/:id/availability?date=2006-01-02[&class=ECONOMY].
func (h *InventoryHandler) availability(c *gin.Context) {
	flightID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	date, err := domain.ParseDate(c.Query("date"))
	if err != nil {
		writeError(c, err)
		return
	}

	if raw := c.Query("class"); raw != "" {
		class, err := domain.ParseSeatClass(raw)
		if err != nil {
			writeError(c, err)
			return
		}
		n, err := h.service.GetAvailability(c.Request.Context(), flightID, date, class)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, classAvailabilityResponse{
			FlightID:   flightID,
			TravelDate: date.Format(domain.DateLayout),
			SeatClass:  class.String(),
			Available:  n,
		})
		return
	}

	a, err := h.service.GetInventory(c.Request.Context(), flightID, date)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, availabilityResponse{
		FlightID:   a.FlightID,
		TravelDate: a.TravelDate.Format(domain.DateLayout),
		Capacity:   perClass(a.Capacity),
		Booked:     perClass(a.Booked),
		Available:  perClass(a.Available),
	})
}
