package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ivline11/nft-rental-dapp/internal/rental"
)

// KioskHandler exposes the per-container operations. It holds no logic of
// its own: every route triggers an orchestrator operation and renders its
// result or classified failure.
type KioskHandler struct {
	kiosks *rental.KioskService
}

// NewKioskHandler creates a new instance of KioskHandler
func NewKioskHandler(kiosks *rental.KioskService) *KioskHandler {
	return &KioskHandler{kiosks: kiosks}
}

// GetKiosk returns the caller's kiosk discovery data, or 404 when the
// account owns no kiosk yet.
func (h *KioskHandler) GetKiosk(c *gin.Context) {
	data, err := h.kiosks.GetKioskData(c.Request.Context(), walletAddress(c))
	if err != nil {
		sendDomainError(c, err)
		return
	}
	if data == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no kiosk found for this account"})
		return
	}
	sendSuccess(c, http.StatusOK, data)
}

// CreateKiosk creates a kiosk for the caller.
func (h *KioskHandler) CreateKiosk(c *gin.Context) {
	result, err := h.kiosks.CreateKiosk(c.Request.Context(), walletAddress(c))
	if err != nil {
		sendDomainError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, result)
}

// InstallExtensionRequest represents the request body for extension install
type InstallExtensionRequest struct {
	Force bool `json:"force"`
}

// InstallExtension installs the rental extension on the caller's kiosk.
func (h *KioskHandler) InstallExtension(c *gin.Context) {
	var req InstallExtensionRequest
	// The body is optional; an empty body means no force.
	_ = c.ShouldBindJSON(&req)

	result, err := h.kiosks.InstallExtension(c.Request.Context(), walletAddress(c), req.Force)
	if err != nil {
		sendDomainError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, result)
}

// RemoveExtension removes the rental extension when its storage is empty.
func (h *KioskHandler) RemoveExtension(c *gin.Context) {
	result, err := h.kiosks.RemoveExtension(c.Request.Context(), walletAddress(c))
	if err != nil {
		sendDomainError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, result)
}

// GetKioskNFTs lists the assets held by the caller's kiosk.
func (h *KioskHandler) GetKioskNFTs(c *gin.Context) {
	nfts, err := h.kiosks.GetKioskNFTs(c.Request.Context(), walletAddress(c))
	if err != nil {
		sendDomainError(c, err)
		return
	}
	sendList(c, nfts)
}

// RemoveNFT takes an asset out of the caller's kiosk.
func (h *KioskHandler) RemoveNFT(c *gin.Context) {
	nftID := c.Param("nft_id")
	if nftID == "" {
		sendBadRequest(c, "an NFT id is required")
		return
	}

	result, err := h.kiosks.RemoveNFT(c.Request.Context(), walletAddress(c), nftID)
	if err != nil {
		sendDomainError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, result)
}
