package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"faregateway/internal/domain"
	"faregateway/internal/service"
)

// FareHandler handles HTTP requests for fare quotes.
type FareHandler struct {
	fareService *service.FareService
	distances   domain.DistanceSource
}

// NewFareHandler creates a new FareHandler.
func NewFareHandler(fareService *service.FareService, distances domain.DistanceSource) *FareHandler {
	return &FareHandler{
		fareService: fareService,
		distances:   distances,
	}
}

// QuoteFareRequest is the HTTP request body for a fare quote.
type QuoteFareRequest struct {
	Route        []string `json:"route"`
	Vehicle      string   `json:"vehicle"`
	IncludeGuide bool     `json:"include_guide"`
}

// LegResponse is one leg of the quoted route.
type LegResponse struct {
	From       string  `json:"from"`
	To         string  `json:"to"`
	DistanceKm float64 `json:"distance_km"`
	Cost       int64   `json:"cost"`
}

// QuoteFareResponse is the HTTP response for a fare quote.
type QuoteFareResponse struct {
	Legs         []LegResponse `json:"legs"`
	IntercitySum int64         `json:"intercity_sum"`
	Multiplier   float64       `json:"multiplier"`
	Subtotal     int64         `json:"subtotal"`
	ServiceFee   int64         `json:"service_fee"`
	Total        int64         `json:"total"`
}

// QuoteFare handles POST /v1/fares/quote
func (h *FareHandler) QuoteFare(c *gin.Context) {
	var req QuoteFareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if len(req.Route) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "route is required"})
		return
	}

	vehicle, ok := domain.VehicleClassByID(req.Vehicle)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown vehicle class"})
		return
	}

	route := make([]domain.Stop, len(req.Route))
	for i, stop := range req.Route {
		route[i] = domain.Stop(stop)
	}

	breakdown, err := h.fareService.ComputeFare(route, h.distances, vehicle, service.FareOptions{
		IncludeGuide: req.IncludeGuide,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	legs := make([]LegResponse, len(breakdown.Legs))
	for i, leg := range breakdown.Legs {
		legs[i] = LegResponse{
			From:       string(leg.From),
			To:         string(leg.To),
			DistanceKm: leg.DistanceKm,
			Cost:       leg.Cost,
		}
	}

	respondJSON(c, http.StatusOK, QuoteFareResponse{
		Legs:         legs,
		IntercitySum: breakdown.IntercitySum,
		Multiplier:   breakdown.Multiplier,
		Subtotal:     breakdown.Subtotal,
		ServiceFee:   breakdown.ServiceFee,
		Total:        breakdown.Total,
	})
}
