package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/flightinventory/internal/domain"
	"github.com/Domenick1991/flightinventory/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightResponse struct {
	ID          int64          `json:"id"`
	CarrierID   int64          `json:"carrier_id"`
	Origin      string         `json:"origin"`
	Destination string         `json:"destination"`
	Fare        string         `json:"fare"`
	Capacity    map[string]int `json:"capacity"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.GET("/:id", h.get)
}

func (h *FlightHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	resp := make([]flightResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toFlightResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(flight))
}

func toFlightResponse(f *domain.Flight) flightResponse {
	return flightResponse{
		ID:          f.ID,
		CarrierID:   f.CarrierID,
		Origin:      f.Origin,
		Destination: f.Destination,
		Fare:        f.Fare.StringFixed(2),
		Capacity:    perClass(f.Capacity),
	}
}

func perClass(counts domain.SeatCounts) map[string]int {
	m := make(map[string]int, domain.NumSeatClasses)
	for _, class := range domain.SeatClasses {
		m[class.String()] = counts.Of(class)
	}
	return m
}
