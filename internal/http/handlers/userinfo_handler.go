// User info HTTP handlers.
//
// Two addressing styles are served for the same resource:
//   - /userInfo            chatId in the query (GET) or the JSON body (PUT, DELETE)
//   - /userInfo/{chatId}   chatId in the path
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CathalystLTDA/zapcont-api/internal/services"
)

// UpdateUserInfoRequest is the body-keyed update payload.
type UpdateUserInfoRequest struct {
	ChatID string `json:"chatId" example:"5511999999999@c.us"`
	services.UserInfoPatch
}

// ChatIDRequest carries a chat identity in the body.
type ChatIDRequest struct {
	ChatID string `json:"chatId" example:"5511999999999@c.us"`
}

// RegisterUserInfo godoc
// @ID          registerUserInfo
// @Summary     Register user info
// @Description Creates the profile of a chat-bot user. All fields are required.
// @Tags        UserInfo
// @Accept      json
// @Produce     json
// @Param       body  body      services.UserInfoInput  true  "Profile"
// @Success     201   {object}  domain.UserInfo
// @Failure     400   {object}  handlers.ErrorResponse  "Missing required fields or user already exists"
// @Failure     500   {object}  handlers.ErrorResponse  "Internal error"
// @Router      /userInfo [post]
func (h *Handlers) RegisterUserInfo(c *gin.Context) {
	var in services.UserInfoInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, msgInvalidBody)
		return
	}
	u, err := h.users.Register(c.Request.Context(), in)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, u)
}

// GetUserInfoByQuery godoc
// @ID          getUserInfoByQuery
// @Summary     Get user info
// @Tags        UserInfo
// @Produce     json
// @Param       chatId  query     string  true  "Chat identity"
// @Success     200     {object}  domain.UserInfo
// @Failure     400     {object}  handlers.ErrorResponse  "Invalid chatId"
// @Failure     404     {object}  handlers.ErrorResponse  "User not found"
// @Router      /userInfo [get]
func (h *Handlers) GetUserInfoByQuery(c *gin.Context) {
	h.getUserInfo(c, c.Query("chatId"))
}

// GetUserInfo godoc
// @ID          getUserInfo
// @Summary     Get user info by chat identity
// @Tags        UserInfo
// @Produce     json
// @Param       chatId  path      string  true  "Chat identity"
// @Success     200     {object}  domain.UserInfo
// @Failure     404     {object}  handlers.ErrorResponse  "User not found"
// @Router      /userInfo/{chatId} [get]
func (h *Handlers) GetUserInfo(c *gin.Context) {
	h.getUserInfo(c, c.Param("chatId"))
}

func (h *Handlers) getUserInfo(c *gin.Context, chatID string) {
	if blank(chatID) {
		badRequest(c, "Invalid chatId")
		return
	}
	u, err := h.users.Get(c.Request.Context(), chatID)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, u)
}

// UpdateUserInfoByBody godoc
// @ID          updateUserInfoByBody
// @Summary     Update user info (chatId in body)
// @Description Merges the provided fields into the stored profile.
// @Tags        UserInfo
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.UpdateUserInfoRequest  true  "chatId plus the fields to change"
// @Success     200   {object}  domain.UserInfo
// @Failure     400   {object}  handlers.ErrorResponse  "chatId is required"
// @Failure     404   {object}  handlers.ErrorResponse  "User not found"
// @Router      /userInfo [put]
func (h *Handlers) UpdateUserInfoByBody(c *gin.Context) {
	var req UpdateUserInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, msgInvalidBody)
		return
	}
	h.updateUserInfo(c, req.ChatID, req.UserInfoPatch)
}

// UpdateUserInfo godoc
// @ID          updateUserInfo
// @Summary     Update user info
// @Tags        UserInfo
// @Accept      json
// @Produce     json
// @Param       chatId  path      string                  true  "Chat identity"
// @Param       body    body      services.UserInfoPatch  true  "Fields to change"
// @Success     200     {object}  domain.UserInfo
// @Failure     404     {object}  handlers.ErrorResponse  "User not found"
// @Router      /userInfo/{chatId} [put]
func (h *Handlers) UpdateUserInfo(c *gin.Context) {
	var p services.UserInfoPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, msgInvalidBody)
		return
	}
	h.updateUserInfo(c, c.Param("chatId"), p)
}

func (h *Handlers) updateUserInfo(c *gin.Context, chatID string, p services.UserInfoPatch) {
	if blank(chatID) {
		badRequest(c, "chatId is required")
		return
	}
	u, err := h.users.Update(c.Request.Context(), chatID, p)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, u)
}

// DeleteUserInfoByBody godoc
// @ID          deleteUserInfoByBody
// @Summary     Delete user info (chatId in body)
// @Tags        UserInfo
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.ChatIDRequest   true  "Chat identity"
// @Success     200   {object}  handlers.MessageResponse
// @Failure     400   {object}  handlers.ErrorResponse   "chatId is required"
// @Failure     404   {object}  handlers.ErrorResponse   "User not found"
// @Router      /userInfo [delete]
func (h *Handlers) DeleteUserInfoByBody(c *gin.Context) {
	var req ChatIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, msgInvalidBody)
		return
	}
	h.deleteUserInfo(c, req.ChatID)
}

// DeleteUserInfo godoc
// @ID          deleteUserInfo
// @Summary     Delete user info
// @Tags        UserInfo
// @Produce     json
// @Param       chatId  path      string  true  "Chat identity"
// @Success     200     {object}  handlers.MessageResponse
// @Failure     404     {object}  handlers.ErrorResponse  "User not found"
// @Router      /userInfo/{chatId} [delete]
func (h *Handlers) DeleteUserInfo(c *gin.Context) {
	h.deleteUserInfo(c, c.Param("chatId"))
}

func (h *Handlers) deleteUserInfo(c *gin.Context, chatID string) {
	if blank(chatID) {
		badRequest(c, "chatId is required")
		return
	}
	if err := h.users.Delete(c.Request.Context(), chatID); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, MessageResponse{Message: "User deleted successfully"})
}
