// Feedback HTTP handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CathalystLTDA/zapcont-api/internal/services"
	"github.com/CathalystLTDA/zapcont-api/internal/utils"
)

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
}

// ListFeedbackResponse wraps a page of feedback and pagination information.
type ListFeedbackResponse struct {
	Feedback   []services.ClassifiedFeedback `json:"feedback"`
	Pagination Pagination                    `json:"pagination"`
}

// CreateFeedback godoc
// @ID          createFeedback
// @Summary     Leave feedback
// @Description Stores free-text feedback and returns it with its keyword sentiment.
// @Tags        Feedback
// @Accept      json
// @Produce     json
// @Param       body  body      services.FeedbackInput  true  "Feedback"
// @Success     201   {object}  services.ClassifiedFeedback
// @Failure     400   {object}  handlers.ErrorResponse  "content is required"
// @Router      /feedback [post]
func (h *Handlers) CreateFeedback(c *gin.Context) {
	var in services.FeedbackInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, msgInvalidBody)
		return
	}
	fb, err := h.fbs.Create(c.Request.Context(), in)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, fb)
}

// ListFeedback godoc
// @ID          listFeedback
// @Summary     List feedback (paginated, newest first)
// @Tags        Feedback
// @Produce     json
// @Param       page       query     int  false  "Page number"     minimum(1) default(1)
// @Param       page_size  query     int  false  "Items per page"  minimum(1) maximum(100) default(20)
// @Success     200        {object}  handlers.ListFeedbackResponse
// @Router      /feedback [get]
func (h *Handlers) ListFeedback(c *gin.Context) {
	page, pageSize := utils.ClampPage(c.Query("page"), c.Query("page_size"))

	items, total, err := h.fbs.ListPage(c.Request.Context(), page, pageSize)
	if err != nil {
		failErr(c, err)
		return
	}
	if items == nil {
		items = []services.ClassifiedFeedback{}
	}
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	ok(c, http.StatusOK, ListFeedbackResponse{
		Feedback: items,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// GetFeedback godoc
// @ID          getFeedback
// @Summary     Get one feedback entry
// @Tags        Feedback
// @Produce     json
// @Param       id  path      string  true  "Feedback ID"
// @Success     200 {object}  services.ClassifiedFeedback
// @Failure     404 {object}  handlers.ErrorResponse  "Feedback not found"
// @Router      /feedback/{id} [get]
func (h *Handlers) GetFeedback(c *gin.Context) {
	fb, err := h.fbs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, fb)
}

// DeleteFeedback godoc
// @ID          deleteFeedback
// @Summary     Delete one feedback entry
// @Tags        Feedback
// @Produce     json
// @Param       id  path      string  true  "Feedback ID"
// @Success     200 {object}  handlers.MessageResponse
// @Failure     404 {object}  handlers.ErrorResponse  "Feedback not found"
// @Router      /feedback/{id} [delete]
func (h *Handlers) DeleteFeedback(c *gin.Context) {
	if err := h.fbs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, MessageResponse{Message: "Feedback deleted successfully"})
}
