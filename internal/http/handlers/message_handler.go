// Message ingestion and chat identity handlers used by the bot.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CathalystLTDA/zapcont-api/internal/services"
)

// CooldownRequest toggles the cooldown flag of a chat.
type CooldownRequest struct {
	IsOnCooldown *bool `json:"isOnCooldown" binding:"required" example:"true"`
}

// UserCountResponse is the body of GET /users/count.
type UserCountResponse struct {
	Status    string `json:"status" example:"ok"`
	Count     *int64 `json:"count,omitempty" example:"42"`
	Message   string `json:"message,omitempty"`
	Timestamp string `json:"timestamp" example:"2025-08-15T12:00:00.000Z"`
}

// RecordMessage godoc
// @ID          recordMessage
// @Summary     Record an inbound chat message
// @Description Stores the message and registers the chat identity on first contact.
// @Tags        Messages
// @Accept      json
// @Produce     json
// @Param       body  body      services.MessageInput   true  "Message"
// @Success     201   {object}  domain.Message
// @Failure     400   {object}  handlers.ErrorResponse  "Missing required fields"
// @Router      /messages [post]
func (h *Handlers) RecordMessage(c *gin.Context) {
	var in services.MessageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, msgInvalidBody)
		return
	}
	m, err := h.msgs.Record(c.Request.Context(), in)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, m)
}

// SetCooldown godoc
// @ID          setCooldown
// @Summary     Set or clear the cooldown of a chat
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       chatId  path      string                    true  "Chat identity"
// @Param       body    body      handlers.CooldownRequest  true  "Flag"
// @Success     200     {object}  domain.UserState
// @Failure     400     {object}  handlers.ErrorResponse    "isOnCooldown is required"
// @Failure     404     {object}  handlers.ErrorResponse    "Chat not found"
// @Router      /users/{chatId}/cooldown [put]
func (h *Handlers) SetCooldown(c *gin.Context) {
	var req CooldownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "isOnCooldown is required")
		return
	}
	st, err := h.msgs.SetCooldown(c.Request.Context(), c.Param("chatId"), *req.IsOnCooldown)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, st)
}

// CountUsers godoc
// @ID          countUsers
// @Summary     Count chat identities
// @Tags        Users
// @Produce     json
// @Success     200  {object}  handlers.UserCountResponse
// @Failure     500  {object}  handlers.UserCountResponse
// @Router      /users/count [get]
func (h *Handlers) CountUsers(c *gin.Context) {
	n, err := h.msgs.CountUsers(c.Request.Context())
	if err != nil {
		logErr(c, err, "count users")
		c.JSON(http.StatusInternalServerError, UserCountResponse{
			Status:    "error",
			Message:   "Failed to count users",
			Timestamp: h.timestamp(),
		})
		return
	}
	ok(c, http.StatusOK, UserCountResponse{Status: "ok", Count: &n, Timestamp: h.timestamp()})
}
