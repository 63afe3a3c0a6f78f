package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ivline11/nft-rental-dapp/internal/logger"
	"github.com/ivline11/nft-rental-dapp/internal/rental"
)

// The connected wallet address travels on this header; an empty value
// means no wallet session is active.
const walletHeader = "X-Wallet-Address"

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// walletAddress returns the caller's connected address, or "" when none.
func walletAddress(c *gin.Context) string {
	return c.GetHeader(walletHeader)
}

// statusForCode maps the domain error taxonomy onto HTTP statuses.
func statusForCode(code rental.Code) int {
	switch code {
	case rental.CodeUnauthenticated:
		return http.StatusUnauthorized
	case rental.CodePreconditionFailed:
		return http.StatusPreconditionFailed
	case rental.CodeUserDeclined:
		return http.StatusConflict
	case rental.CodeObjectNotFound:
		return http.StatusNotFound
	case rental.CodeInsufficientFunds, rental.CodeInsufficientBudget:
		return http.StatusPaymentRequired
	case rental.CodeMalformedArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// sendDomainError logs the failure and renders it with the status its
// classification maps to.
func sendDomainError(c *gin.Context, err error) {
	classified := rental.Classify(err)
	logger.Error("Operation failed",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("code", string(classified.Code)),
		zap.Error(err),
	)
	c.JSON(statusForCode(classified.Code), ErrorResponse{
		Error: classified.Message,
		Code:  string(classified.Code),
	})
}

// sendBadRequest renders a request-shape failure.
func sendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// sendSuccess renders data with the given status.
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendList renders a list response.
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   items,
	})
}
