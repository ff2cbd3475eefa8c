package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"faregateway/internal/service"
)

// EnquiryHandler handles HTTP requests for booking enquiries.
type EnquiryHandler struct {
	enquiryService *service.EnquiryService
}

// NewEnquiryHandler creates a new EnquiryHandler.
func NewEnquiryHandler(enquiryService *service.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiryService: enquiryService}
}

// SubmitEnquiryRequest is the HTTP request body for an enquiry submission.
type SubmitEnquiryRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
	Price    int64  `json:"price"`
	BotToken string `json:"botToken"`
}

// SubmitEnquiry handles POST /v1/enquiries
func (h *EnquiryHandler) SubmitEnquiry(c *gin.Context) {
	var req SubmitEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	_, err := h.enquiryService.Submit(c.Request.Context(), service.SubmitEnquiryRequest{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Message:  req.Message,
		Price:    req.Price,
		BotToken: req.BotToken,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, gin.H{"success": true})
}
