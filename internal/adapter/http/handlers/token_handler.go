package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nails/driver-invoice-worldpay/internal/adapter/http/dto/request"
	"github.com/nails/driver-invoice-worldpay/internal/adapter/http/dto/response"
	"github.com/nails/driver-invoice-worldpay/internal/usecase"
)

type TokenHandler struct {
	tokens usecase.ITokenUseCase
}

func NewTokenHandler(tokens usecase.ITokenUseCase) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// ListTokens godoc
// @Summary      Stored card tokens of a shopper
// @Tags         tokens
// @Produce      json
// @Param        shopper_id        path      string  true   "Shopper id"
// @Param        currency          query     string  true   "Currency of the merchant account"
// @Param        customer_present  query     bool    false  "Customer-present merchant account"
// @Success      200               {array}   response.TokenResponse
// @Router       /shoppers/{shopper_id}/tokens [get]
func (h *TokenHandler) ListTokens(c *gin.Context) {
	var q request.MerchantQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidRequest(c)
		return
	}
	owner := q.TokenOwner(c.Param("shopper_id"))

	tokens, err := h.tokens.ListTokens(c.Request.Context(), owner)
	if err != nil {
		if isGatewayFailure(err) {
			writeGatewayFailure(c, err)
			return
		}
		writeError(c, err)
		return
	}
	log.Printf("[worldpay][handler] tokens listed shopper_id=%s count=%d", owner.ShopperID, len(tokens))
	c.JSON(http.StatusOK, response.FromStoredTokens(tokens))
}

// DeleteToken godoc
// @Summary      Delete a stored card token
// @Tags         tokens
// @Param        shopper_id        path   string  true   "Shopper id"
// @Param        token_id          path   string  true   "Token id"
// @Param        currency          query  string  true   "Currency of the merchant account"
// @Param        customer_present  query  bool    false  "Customer-present merchant account"
// @Success      204
// @Router       /shoppers/{shopper_id}/tokens/{token_id} [delete]
func (h *TokenHandler) DeleteToken(c *gin.Context) {
	var q request.MerchantQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		invalidRequest(c)
		return
	}
	owner := q.TokenOwner(c.Param("shopper_id"))
	tokenID := c.Param("token_id")

	if err := h.tokens.DeleteToken(c.Request.Context(), tokenID, owner, usecase.DefaultTokenDeleteReason); err != nil {
		if isGatewayFailure(err) {
			writeGatewayFailure(c, err)
			return
		}
		writeError(c, err)
		return
	}
	log.Printf("[worldpay][handler] token deleted shopper_id=%s token_id=%s", owner.ShopperID, tokenID)
	c.Status(http.StatusNoContent)
}
