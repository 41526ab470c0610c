// Company HTTP handlers.
//
//   - POST   /companies          and POST /company   (create)
//   - GET    /companies/{cnpj}   and GET  /company?cnpj= | ?chatId=
//   - PUT    /companies/{cnpj}   and PUT  /company   (cnpj in body)
//   - DELETE /companies/{cnpj}   and DELETE /company?cnpj=
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/CathalystLTDA/zapcont-api/internal/services"
)

// UpdateCompanyRequest is the body-keyed update payload.
type UpdateCompanyRequest struct {
	CNPJ string `json:"cnpj" example:"11222333000181"`
	services.CompanyPatch
}

// CreateCompany godoc
// @ID          createCompany
// @Summary     Register a company
// @Tags        Companies
// @Accept      json
// @Produce     json
// @Param       body  body      services.CompanyInput   true  "Company"
// @Success     201   {object}  domain.Company
// @Failure     400   {object}  handlers.ErrorResponse  "Invalid payload or company already exists"
// @Router      /companies [post]
// @Router      /company [post]
func (h *Handlers) CreateCompany(c *gin.Context) {
	var in services.CompanyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, msgInvalidBody)
		return
	}
	co, err := h.cos.Create(c.Request.Context(), in)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, co)
}

// GetCompany godoc
// @ID          getCompany
// @Summary     Get a company by CNPJ
// @Tags        Companies
// @Produce     json
// @Param       cnpj  path      string  true  "CNPJ"
// @Success     200   {object}  domain.Company
// @Failure     404   {object}  handlers.ErrorResponse  "Company not found"
// @Router      /companies/{cnpj} [get]
func (h *Handlers) GetCompany(c *gin.Context) {
	co, err := h.cos.GetByCNPJ(c.Request.Context(), c.Param("cnpj"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, co)
}

// FindCompanies godoc
// @ID          findCompanies
// @Summary     Find companies by CNPJ or chat
// @Description With cnpj returns one company; with chatId returns every company of that chat.
// @Tags        Companies
// @Produce     json
// @Param       cnpj    query     string  false  "CNPJ"
// @Param       chatId  query     string  false  "Chat identity"
// @Success     200     {object}  domain.Company
// @Failure     400     {object}  handlers.ErrorResponse  "Missing query parameter"
// @Failure     404     {object}  handlers.ErrorResponse  "Company not found"
// @Router      /company [get]
func (h *Handlers) FindCompanies(c *gin.Context) {
	ctx := c.Request.Context()
	if cnpj := c.Query("cnpj"); !blank(cnpj) {
		co, err := h.cos.GetByCNPJ(ctx, cnpj)
		if err != nil {
			failErr(c, err)
			return
		}
		ok(c, http.StatusOK, co)
		return
	}
	if chatID := c.Query("chatId"); !blank(chatID) {
		list, err := h.cos.ListByChatID(ctx, chatID)
		if err != nil {
			failErr(c, err)
			return
		}
		ok(c, http.StatusOK, list)
		return
	}
	badRequest(c, "Missing query parameter")
}

// UpdateCompany godoc
// @ID          updateCompany
// @Summary     Update a company
// @Description Merges the provided fields. The CNPJ itself cannot change.
// @Tags        Companies
// @Accept      json
// @Produce     json
// @Param       cnpj  path      string                 true  "CNPJ"
// @Param       body  body      services.CompanyPatch  true  "Fields to change"
// @Success     200   {object}  domain.Company
// @Failure     404   {object}  handlers.ErrorResponse "Company not found"
// @Router      /companies/{cnpj} [put]
func (h *Handlers) UpdateCompany(c *gin.Context) {
	var p services.CompanyPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, msgInvalidBody)
		return
	}
	h.updateCompany(c, c.Param("cnpj"), p)
}

// UpdateCompanyByBody godoc
// @ID          updateCompanyByBody
// @Summary     Update a company (cnpj in body)
// @Tags        Companies
// @Accept      json
// @Produce     json
// @Param       body  body      handlers.UpdateCompanyRequest  true  "cnpj plus the fields to change"
// @Success     200   {object}  domain.Company
// @Failure     400   {object}  handlers.ErrorResponse "CNPJ is required"
// @Failure     404   {object}  handlers.ErrorResponse "Company not found"
// @Router      /company [put]
func (h *Handlers) UpdateCompanyByBody(c *gin.Context) {
	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, msgInvalidBody)
		return
	}
	h.updateCompany(c, req.CNPJ, req.CompanyPatch)
}

func (h *Handlers) updateCompany(c *gin.Context, cnpj string, p services.CompanyPatch) {
	if blank(cnpj) {
		badRequest(c, "CNPJ is required")
		return
	}
	co, err := h.cos.Update(c.Request.Context(), cnpj, p)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, co)
}

// DeleteCompany godoc
// @ID          deleteCompany
// @Summary     Delete a company
// @Tags        Companies
// @Produce     json
// @Param       cnpj  path      string  true  "CNPJ"
// @Success     200   {object}  handlers.MessageResponse
// @Failure     404   {object}  handlers.ErrorResponse  "Company not found"
// @Router      /companies/{cnpj} [delete]
func (h *Handlers) DeleteCompany(c *gin.Context) {
	h.deleteCompany(c, c.Param("cnpj"))
}

// DeleteCompanyByQuery godoc
// @ID          deleteCompanyByQuery
// @Summary     Delete a company (cnpj in query)
// @Tags        Companies
// @Produce     json
// @Param       cnpj  query     string  true  "CNPJ"
// @Success     200   {object}  handlers.MessageResponse
// @Failure     400   {object}  handlers.ErrorResponse  "Missing CNPJ parameter"
// @Failure     404   {object}  handlers.ErrorResponse  "Company not found"
// @Router      /company [delete]
func (h *Handlers) DeleteCompanyByQuery(c *gin.Context) {
	cnpj := c.Query("cnpj")
	if blank(cnpj) {
		badRequest(c, "Missing CNPJ parameter")
		return
	}
	h.deleteCompany(c, cnpj)
}

func (h *Handlers) deleteCompany(c *gin.Context, cnpj string) {
	if err := h.cos.Delete(c.Request.Context(), cnpj); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, MessageResponse{Message: "Company deleted successfully"})
}
