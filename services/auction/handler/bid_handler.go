package handler

import (
	"net/http"

	"auction-house/internal/auth"
	model "auction-house/internal/models"
	"auction-house/services/auction/helpers"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

type BidServiceInterface interface {
	PlaceBid(productID string, actor auth.Identity, rawPrice any) (model.Bid, error)
	DeleteBid(bidID string, actor auth.Identity) error
}

type BidHandler struct {
	service BidServiceInterface
}

func NewBidHandler(service BidServiceInterface) *BidHandler {
	return &BidHandler{service: service}
}

// PlaceBidHandler handles POST /api/products/:productId/bids
func (h *BidHandler) PlaceBidHandler(c *gin.Context) {
	actor, ok := helpers.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	productID := c.Param("productId")
	bid, err := h.service.PlaceBid(productID, actor, req.Price)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err, map[string]any{
			"product_id": productID,
			"bidder_id":  actor.ID,
		})
		return
	}

	c.JSON(http.StatusCreated, helpers.NewBidResponse(bid))
	helpers.LogSuccess("PlaceBidHandler", "bid recorded successfully", map[string]any{
		"bid_id":     bid.ID,
		"product_id": bid.ProductID,
		"bidder_id":  bid.BidderID,
		"price":      bid.Price,
	})
}

// DeleteBidHandler handles DELETE /api/bids/:bidId
func (h *BidHandler) DeleteBidHandler(c *gin.Context) {
	actor, ok := helpers.ActorFromContext(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Authentication required", nil)
		return
	}

	bidID := c.Param("bidId")
	if err := h.service.DeleteBid(bidID, actor); err != nil {
		helpers.RespondError(c, "DeleteBidHandler", err, map[string]any{
			"bid_id":   bidID,
			"actor_id": actor.ID,
		})
		return
	}

	c.Status(http.StatusNoContent)
	helpers.LogSuccess("DeleteBidHandler", "bid deleted successfully", map[string]any{
		"bid_id":   bidID,
		"actor_id": actor.ID,
	})
}
