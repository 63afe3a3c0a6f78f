package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ivline11/nft-rental-dapp/internal/rental"
)

// RentalHandler exposes the per-asset operations: minting, placing,
// listing, renting and returning.
type RentalHandler struct {
	rentals *rental.RentalService
}

// NewRentalHandler creates a new instance of RentalHandler
func NewRentalHandler(rentals *rental.RentalService) *RentalHandler {
	return &RentalHandler{rentals: rentals}
}

// GetUserNFTs lists the NFTs owned directly by the caller.
func (h *RentalHandler) GetUserNFTs(c *gin.Context) {
	nfts, err := h.rentals.GetUserNFTs(c.Request.Context(), walletAddress(c))
	if err != nil {
		sendDomainError(c, err)
		return
	}
	sendList(c, nfts)
}

// GetListings lists the currently rentable assets. No wallet required.
func (h *RentalHandler) GetListings(c *gin.Context) {
	listings, err := h.rentals.GetRentableListings(c.Request.Context())
	if err != nil {
		sendDomainError(c, err)
		return
	}
	sendList(c, listings)
}

// GetRentedNFTs lists the assets rented into the caller's kiosk.
func (h *RentalHandler) GetRentedNFTs(c *gin.Context) {
	listings, err := h.rentals.GetRentedNFTs(c.Request.Context(), walletAddress(c))
	if err != nil {
		sendDomainError(c, err)
		return
	}
	sendList(c, listings)
}

// CreateNFTRequest represents the request body for minting an NFT
type CreateNFTRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateNFT mints a new NFT to the caller's address.
func (h *RentalHandler) CreateNFT(c *gin.Context) {
	var req CreateNFTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBadRequest(c, "invalid request body")
		return
	}

	result, err := h.rentals.CreateNFT(c.Request.Context(), walletAddress(c), req.Name, req.Description)
	if err != nil {
		sendDomainError(c, err)
		return
	}
	sendSuccess(c, http.StatusCreated, result)
}

// SetupRentingRequest represents the request body for policy configuration
type SetupRentingRequest struct {
	PublisherID        string `json:"publisherId"`
	RoyaltyBasisPoints uint64 `json:"royaltyBasisPoints"`
}

// SetupRenting configures the rental policy for the deployment's NFT type.
func (h *RentalHandler) SetupRenting(c *gin.Context) {
	var req SetupRentingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBadRequest(c, "invalid request body")
		return
	}

	result, err := h.rentals.SetupRenting(c.Request.Context(), walletAddress(c), req.PublisherID, req.RoyaltyBasisPoints)
	if err != nil {
		sendDomainError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, result)
}

// PlaceNFTRequest represents the request body for placing an NFT
type PlaceNFTRequest struct {
	NFTID string `json:"nftId" binding:"required"`
}

// PlaceInKiosk moves an owned NFT into the caller's kiosk.
func (h *RentalHandler) PlaceInKiosk(c *gin.Context) {
	var req PlaceNFTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBadRequest(c, "invalid request body")
		return
	}

	result, err := h.rentals.PlaceInKiosk(c.Request.Context(), walletAddress(c), req.NFTID)
	if err != nil {
		sendDomainError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, result)
}

// ListForRentRequest represents the request body for listing an NFT.
// Duration is whole days; price is per day in the chain's smallest unit.
type ListForRentRequest struct {
	NFTID        string `json:"nftId" binding:"required"`
	DurationDays uint64 `json:"durationDays" binding:"required"`
	PricePerDay  uint64 `json:"pricePerDay" binding:"required"`
}

// ListForRent offers a kiosk-held NFT for timed rental.
func (h *RentalHandler) ListForRent(c *gin.Context) {
	var req ListForRentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBadRequest(c, "invalid request body")
		return
	}

	result, err := h.rentals.ListForRent(c.Request.Context(), walletAddress(c), rental.ListForRentParams{
		NFTID:        req.NFTID,
		DurationDays: req.DurationDays,
		PricePerDay:  req.PricePerDay,
	})
	if err != nil {
		sendDomainError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, result)
}

// RentRequest represents the request body for renting an NFT
type RentRequest struct {
	NFTID          string `json:"nftId" binding:"required"`
	RenterKioskID  string `json:"renterKioskId" binding:"required"`
	RentalPolicyID string `json:"rentalPolicyId"`
}

// Rent rents a listed NFT into the caller's kiosk.
func (h *RentalHandler) Rent(c *gin.Context) {
	var req RentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBadRequest(c, "invalid request body")
		return
	}

	result, err := h.rentals.Rent(c.Request.Context(), walletAddress(c), rental.RentParams{
		RenterKioskID:  req.RenterKioskID,
		RentalPolicyID: req.RentalPolicyID,
		NFTID:          req.NFTID,
	})
	if err != nil {
		sendDomainError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, result)
}

// ReturnRequest represents the request body for returning a rented NFT
type ReturnRequest struct {
	NFTID string `json:"nftId" binding:"required"`
}

// ReturnNFT returns a rented NFT to its lender.
func (h *RentalHandler) ReturnNFT(c *gin.Context) {
	var req ReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendBadRequest(c, "invalid request body")
		return
	}

	result, err := h.rentals.ReturnNFT(c.Request.Context(), walletAddress(c), req.NFTID)
	if err != nil {
		sendDomainError(c, err)
		return
	}
	sendSuccess(c, http.StatusOK, result)
}
