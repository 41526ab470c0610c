// Transaction HTTP handlers.
//
//   - POST   /transactions                 (register, honors Idempotency-Key)
//   - GET    /transactions/{chatId}        (list for a chat)
//   - PUT    /transactions                 (update, id in body)
//   - PUT    /transactions/update/{id}     (update)
//   - DELETE /transactions                 (delete, id in body)
//   - DELETE /transactions/delete/{id}     (delete)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CathalystLTDA/zapcont-api/internal/http/middleware"
	"github.com/CathalystLTDA/zapcont-api/internal/services"
)

// HeaderIdempotentReplay marks a response served from an earlier request
// with the same Idempotency-Key.
const HeaderIdempotentReplay = "Idempotent-Replayed"

const msgTransactionID = "Transaction ID is required"

// UpdateTransactionRequest is the body-keyed update payload.
type UpdateTransactionRequest struct {
	ID string `json:"id" example:"8f14e45f-ceea-467f-a0e6-7a1f0d5c3b11"`
	services.TransactionPatch
}

// IDRequest carries a resource id in the body.
type IDRequest struct {
	ID string `json:"id" example:"8f14e45f-ceea-467f-a0e6-7a1f0d5c3b11"`
}

// RegisterTransaction godoc
// @ID          registerTransaction
// @Summary     Register a ledger entry
// @Description Amount must be positive; it is stored with two decimal places. Sending the same
// @Description Idempotency-Key again returns the entry created the first time with 200.
// @Tags        Transactions
// @Accept      json
// @Produce     json
// @Param       Idempotency-Key  header    string                     false  "Client retry key"
// @Param       body             body      services.TransactionInput  true   "Entry"
// @Success     201              {object}  domain.Transaction
// @Success     200              {object}  domain.Transaction         "Replayed"
// @Failure     400              {object}  handlers.ErrorResponse     "Missing required fields"
// @Router      /transactions [post]
func (h *Handlers) RegisterTransaction(c *gin.Context) {
	var in services.TransactionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, msgInvalidBody)
		return
	}
	key, _ := middleware.GetIdempotencyKey(c)

	tx, replayed, err := h.txs.Register(c.Request.Context(), in, key)
	if err != nil {
		failErr(c, err)
		return
	}
	if replayed {
		c.Header(HeaderIdempotentReplay, "true")
		ok(c, http.StatusOK, tx)
		return
	}
	ok(c, http.StatusCreated, tx)
}

// ListTransactions godoc
// @ID          listTransactions
// @Summary     List ledger entries of a chat
// @Tags        Transactions
// @Produce     json
// @Param       chatId  path     string  true  "Chat identity"
// @Success     200     {array}  domain.Transaction
// @Router      /transactions/{chatId} [get]
func (h *Handlers) ListTransactions(c *gin.Context) {
	chatID := c.Param("chatId")
	if blank(chatID) {
		badRequest(c, "chatId is required")
		return
	}
	list, err := h.txs.ListByChatID(c.Request.Context(), chatID)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, list)
}

// UpdateTransactionByBody godoc
// @ID          updateTransactionByBody
// @Summary     Update a ledger entry (id in body)
// @Tags        Transactions
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.UpdateTransactionRequest  true  "id plus the fields to change"
// @Success     200   {object}  domain.Transaction
// @Failure     400   {object}  handlers.ErrorResponse  "Transaction ID is required"
// @Failure     404   {object}  handlers.ErrorResponse  "Transaction not found"
// @Router      /transactions [put]
func (h *Handlers) UpdateTransactionByBody(c *gin.Context) {
	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, msgInvalidBody)
		return
	}
	h.updateTransaction(c, req.ID, req.TransactionPatch)
}

// UpdateTransaction godoc
// @ID          updateTransaction
// @Summary     Update a ledger entry
// @Tags        Transactions
// @Accept      json
// @Produce     json
// @Param       id    path      string                     true  "Transaction ID"
// @Param       body  body      services.TransactionPatch  true  "Fields to change"
// @Success     200   {object}  domain.Transaction
// @Failure     404   {object}  handlers.ErrorResponse  "Transaction not found"
// @Router      /transactions/update/{id} [put]
func (h *Handlers) UpdateTransaction(c *gin.Context) {
	var p services.TransactionPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, msgInvalidBody)
		return
	}
	h.updateTransaction(c, c.Param("id"), p)
}

func (h *Handlers) updateTransaction(c *gin.Context, id string, p services.TransactionPatch) {
	if blank(id) {
		badRequest(c, msgTransactionID)
		return
	}
	tx, err := h.txs.Update(c.Request.Context(), id, p)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, tx)
}

// DeleteTransactionByBody godoc
// @ID          deleteTransactionByBody
// @Summary     Delete a ledger entry (id in body)
// @Tags        Transactions
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.IDRequest       true  "Transaction ID"
// @Success     200   {object}  handlers.MessageResponse
// @Failure     400   {object}  handlers.ErrorResponse   "Transaction ID is required"
// @Failure     404   {object}  handlers.ErrorResponse   "Transaction not found"
// @Router      /transactions [delete]
func (h *Handlers) DeleteTransactionByBody(c *gin.Context) {
	var req IDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, msgInvalidBody)
		return
	}
	h.deleteTransaction(c, req.ID)
}

// DeleteTransaction godoc
// @ID          deleteTransaction
// @Summary     Delete a ledger entry
// @Tags        Transactions
// @Produce     json
// @Param       id  path      string  true  "Transaction ID"
// @Success     200 {object}  handlers.MessageResponse
// @Failure     404 {object}  handlers.ErrorResponse  "Transaction not found"
// @Router      /transactions/delete/{id} [delete]
func (h *Handlers) DeleteTransaction(c *gin.Context) {
	h.deleteTransaction(c, c.Param("id"))
}

func (h *Handlers) deleteTransaction(c *gin.Context, id string) {
	if blank(id) {
		badRequest(c, msgTransactionID)
		return
	}
	if err := h.txs.Delete(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, MessageResponse{Message: "Transaction deleted successfully"})
}
