// NFE.io proxy handlers.
//
// Every handler validates its body against the matching schema contract
// (inside the service), makes exactly one upstream call and relays the
// vendor's answer. Upstream failures are mapped by failErr.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/CathalystLTDA/zapcont-api/internal/services"
)

// LegacyIssueResponse is the reply of the envelope issuance route.
type LegacyIssueResponse struct {
	Data   json.RawMessage `json:"data" swaggertype:"object"`
	Status int             `json:"status" example:"202"`
}

const msgCompanyDeleted = "Empresa deletada com sucesso"

// readBody returns the raw request body. Oversized bodies are answered here.
func readBody(c *gin.Context) ([]byte, bool) {
	raw, err := c.GetRawData()
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			fail(c, http.StatusRequestEntityTooLarge, KindValidation, "Request body too large")
			return nil, false
		}
		badRequest(c, "Invalid request body")
		return nil, false
	}
	return raw, true
}

// attachment streams a rendition as a download.
func attachment(c *gin.Context, r *services.Rendition) {
	name := strings.NewReplacer(`"`, "", "\\", "", "\r", "", "\n", "").Replace(r.Filename)
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, r.ContentType, r.Body)
}

// ---- companies v1 ----

// GetCompanyV1 godoc
// @ID          nfeGetCompanyV1
// @Summary     Fetch a company (v1)
// @Tags        NFE.io
// @Produce     json
// @Param       company_id  path      string  true  "NFE.io company id"
// @Success     200         {object}  object
// @Failure     401         {object}  handlers.ErrorResponse  "Unauthorized"
// @Failure     500         {object}  handlers.ErrorResponse  "internal error"
// @Router      /nfe/v1/Companies/{company_id} [get]
func (h *Handlers) GetCompanyV1(c *gin.Context) {
	res, err := h.invoices.GetCompanyV1(c.Request.Context(), c.Param("company_id"))
	if err != nil {
		failErr(c, err)
		return
	}
	relay(c, res.Status, res)
}

// CreateCompanyV1 godoc
// @ID          nfeCreateCompanyV1
// @Summary     Create a company (v1)
// @Tags        NFE.io
// @Accept      json
// @Produce     json
// @Param       body  body      schema.CompanyV1        true  "Company"
// @Success     200   {object}  object
// @Failure     400   {object}  handlers.ErrorResponse  "Validation failed"
// @Router      /nfe/v1/Companies [post]
func (h *Handlers) CreateCompanyV1(c *gin.Context) {
	raw, okBody := readBody(c)
	if !okBody {
		return
	}
	res, err := h.invoices.CreateCompanyV1(c.Request.Context(), raw)
	if err != nil {
		failErr(c, err)
		return
	}
	relay(c, res.Status, res)
}

// UpdateCompanyV1 godoc
// @ID          nfeUpdateCompanyV1
// @Summary     Update a company (v1)
// @Tags        NFE.io
// @Accept      json
// @Produce     json
// @Param       company_id  path      string                  true  "NFE.io company id"
// @Param       body        body      schema.CompanyV1        true  "Company"
// @Success     200         {object}  object
// @Failure     400         {object}  handlers.ErrorResponse  "Validation failed"
// @Router      /nfe/v1/Companies/{company_id} [put]
func (h *Handlers) UpdateCompanyV1(c *gin.Context) {
	raw, okBody := readBody(c)
	if !okBody {
		return
	}
	res, err := h.invoices.UpdateCompanyV1(c.Request.Context(), c.Param("company_id"), raw)
	if err != nil {
		failErr(c, err)
		return
	}
	relay(c, res.Status, res)
}

// DeleteCompanyV1 godoc
// @ID          nfeDeleteCompanyV1
// @Summary     Delete a company (v1)
// @Tags        NFE.io
// @Produce     json
// @Param       company_id  path      string  true  "NFE.io company id"
// @Success     200         {object}  handlers.MessageResponse
// @Router      /nfe/v1/Companies/{company_id} [delete]
func (h *Handlers) DeleteCompanyV1(c *gin.Context) {
	if err := h.invoices.DeleteCompanyV1(c.Request.Context(), c.Param("company_id")); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, MessageResponse{Message: msgCompanyDeleted})
}

// ---- companies v2 ----

// ListCompaniesV2 godoc
// @ID          nfeListCompaniesV2
// @Summary     List companies (v2)
// @Description The query string is forwarded unchanged (paging parameters of the vendor).
// @Tags        NFE.io
// @Produce     json
// @Success     200  {object}  object
// @Router      /nfe/v2/Companies [get]
func (h *Handlers) ListCompaniesV2(c *gin.Context) {
	res, err := h.invoices.ListCompaniesV2(c.Request.Context(), c.Request.URL.RawQuery)
	if err != nil {
		failErr(c, err)
		return
	}
	relay(c, res.Status, res)
}

// GetCompanyV2 godoc
// @ID          nfeGetCompanyV2
// @Summary     Fetch a company (v2)
// @Tags        NFE.io
// @Produce     json
// @Param       company_id  path      string  true  "NFE.io company id"
// @Success     200         {object}  object
// @Router      /nfe/v2/Companies/{company_id} [get]
func (h *Handlers) GetCompanyV2(c *gin.Context) {
	res, err := h.invoices.GetCompanyV2(c.Request.Context(), c.Param("company_id"))
	if err != nil {
		failErr(c, err)
		return
	}
	relay(c, res.Status, res)
}

// CreateCompanyV2 godoc
// @ID          nfeCreateCompanyV2
// @Summary     Create a company (v2)
// @Tags        NFE.io
// @Accept      json
// @Produce     json
// @Param       body  body      schema.CompanyV2Body    true  "Company"
// @Success     200   {object}  object
// @Failure     400   {object}  handlers.ErrorResponse  "Validation failed"
// @Router      /nfe/v2/Companies [post]
func (h *Handlers) CreateCompanyV2(c *gin.Context) {
	raw, okBody := readBody(c)
	if !okBody {
		return
	}
	res, err := h.invoices.CreateCompanyV2(c.Request.Context(), raw)
	if err != nil {
		failErr(c, err)
		return
	}
	relay(c, res.Status, res)
}

// UpdateCompanyV2 godoc
// @ID          nfeUpdateCompanyV2
// @Summary     Update a company (v2)
// @Tags        NFE.io
// @Accept      json
// @Produce     json
// @Param       company_id  path      string                  true  "NFE.io company id"
// @Param       body        body      schema.CompanyV2Body    true  "Company"
// @Success     200         {object}  object
// @Failure     400         {object}  handlers.ErrorResponse  "Validation failed"
// @Router      /nfe/v2/Companies/{company_id} [put]
func (h *Handlers) UpdateCompanyV2(c *gin.Context) {
	raw, okBody := readBody(c)
	if !okBody {
		return
	}
	res, err := h.invoices.UpdateCompanyV2(c.Request.Context(), c.Param("company_id"), raw)
	if err != nil {
		failErr(c, err)
		return
	}
	relay(c, res.Status, res)
}

// DeleteCompanyV2 godoc
// @ID          nfeDeleteCompanyV2
// @Summary     Delete a company (v2)
// @Tags        NFE.io
// @Produce     json
// @Param       company_id  path      string  true  "NFE.io company id"
// @Success     200         {object}  handlers.MessageResponse
// @Router      /nfe/v2/Companies/{company_id} [delete]
func (h *Handlers) DeleteCompanyV2(c *gin.Context) {
	if err := h.invoices.DeleteCompanyV2(c.Request.Context(), c.Param("company_id")); err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, MessageResponse{Message: msgCompanyDeleted})
}

// ---- service invoices ----

// IssueServiceInvoiceLegacy godoc
// @ID          nfeIssueLegacy
// @Summary     Issue a service invoice (envelope)
// @Description Body is {company_id, body}; body follows the relaxed issuance contract.
// @Description Violations inside body are reported with the "body." prefix.
// @Tags        NFE.io
// @Accept      json
// @Produce     json
// @Param       body  body      services.LegacyEnvelope  true  "Envelope"
// @Success     202   {object}  handlers.LegacyIssueResponse
// @Failure     400   {object}  handlers.ErrorResponse   "Missing company_id or body"
// @Failure     408   {object}  handlers.ErrorResponse   "Time limit exceeded"
// @Router      /nfe/ServiceInvoices [post]
func (h *Handlers) IssueServiceInvoiceLegacy(c *gin.Context) {
	raw, okBody := readBody(c)
	if !okBody {
		return
	}
	res, err := h.invoices.IssueLegacy(c.Request.Context(), raw)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusAccepted, LegacyIssueResponse{Data: res.JSON(), Status: http.StatusAccepted})
}

// IssueServiceInvoice godoc
// @ID          nfeIssueServiceInvoiceV1
// @Summary     Issue a service invoice (v1)
// @Tags        NFE.io
// @Accept      json
// @Produce     json
// @Param       company_id  path      string                  true  "NFE.io company id"
// @Param       body        body      schema.ServiceInvoice   true  "Invoice"
// @Success     200         {object}  object
// @Failure     400         {object}  handlers.ErrorResponse  "Validation failed"
// @Router      /nfe/v1/ServiceInvoices/{company_id} [post]
func (h *Handlers) IssueServiceInvoice(c *gin.Context) {
	raw, okBody := readBody(c)
	if !okBody {
		return
	}
	res, err := h.invoices.IssueV1(c.Request.Context(), c.Param("company_id"), raw)
	if err != nil {
		failErr(c, err)
		return
	}
	relay(c, res.Status, res)
}

// GetServiceInvoice godoc
// @ID          nfeGetServiceInvoice
// @Summary     Fetch a service invoice
// @Tags        NFE.io
// @Produce     json
// @Param       company_id  path      string  true  "NFE.io company id"
// @Param       invoice_id  path      string  true  "Invoice id"
// @Success     200         {object}  object
// @Router      /nfe/v1/ServiceInvoices/{company_id}/invoiceId/{invoice_id} [get]
func (h *Handlers) GetServiceInvoice(c *gin.Context) {
	res, err := h.invoices.GetInvoice(c.Request.Context(), c.Param("company_id"), c.Param("invoice_id"))
	if err != nil {
		failErr(c, err)
		return
	}
	relay(c, res.Status, res)
}

// SendServiceInvoiceEmail godoc
// @ID          nfeSendServiceInvoiceEmail
// @Summary     E-mail a service invoice to its borrower
// @Tags        NFE.io
// @Produce     json
// @Param       company_id  path      string  true  "NFE.io company id"
// @Param       invoice_id  path      string  true  "Invoice id"
// @Success     200         {object}  object
// @Router      /nfe/v1/ServiceInvoices/{company_id}/invoiceId/{invoice_id} [put]
func (h *Handlers) SendServiceInvoiceEmail(c *gin.Context) {
	res, err := h.invoices.SendEmail(c.Request.Context(), c.Param("company_id"), c.Param("invoice_id"))
	if err != nil {
		failErr(c, err)
		return
	}
	relay(c, res.Status, res)
}

// ServiceInvoicePDF godoc
// @ID          nfeServiceInvoicePDF
// @Summary     Download the PDF rendition
// @Tags        NFE.io
// @Produce     application/pdf
// @Param       company_id  path      string  true  "NFE.io company id"
// @Param       invoice_id  path      string  true  "Invoice id"
// @Success     200         {file}    binary
// @Header      200         {string}  Content-Disposition  "attachment; filename=\"nfe-{invoice_id}.pdf\""
// @Router      /nfe/v1/ServiceInvoices/{company_id}/invoiceId/{invoice_id}/pdf [get]
func (h *Handlers) ServiceInvoicePDF(c *gin.Context) {
	r, err := h.invoices.PDF(c.Request.Context(), c.Param("company_id"), c.Param("invoice_id"))
	if err != nil {
		failErr(c, err)
		return
	}
	attachment(c, r)
}

// ServiceInvoiceXML godoc
// @ID          nfeServiceInvoiceXML
// @Summary     Download the XML rendition
// @Tags        NFE.io
// @Produce     application/xml
// @Param       company_id  path      string  true  "NFE.io company id"
// @Param       invoice_id  path      string  true  "Invoice id"
// @Success     200         {file}    binary
// @Header      200         {string}  Content-Disposition  "attachment; filename=\"nfe-{invoice_id}.xml\""
// @Router      /nfe/v1/ServiceInvoices/{company_id}/invoiceId/{invoice_id}/xml [get]
func (h *Handlers) ServiceInvoiceXML(c *gin.Context) {
	r, err := h.invoices.XML(c.Request.Context(), c.Param("company_id"), c.Param("invoice_id"))
	if err != nil {
		failErr(c, err)
		return
	}
	attachment(c, r)
}

// ---- product invoices ----

// IssueProductInvoice godoc
// @ID          nfeIssueProductInvoice
// @Summary     Issue a product invoice (NF-e)
// @Tags        NFE.io
// @Accept      json
// @Produce     json
// @Param       company_id  path      string                  true  "NFE.io company id"
// @Param       body        body      schema.ProductInvoice   true  "Invoice"
// @Success     200         {object}  object
// @Failure     400         {object}  handlers.ErrorResponse  "Validation failed"
// @Router      /nfe/v2/ProductInvoices/{company_id} [post]
func (h *Handlers) IssueProductInvoice(c *gin.Context) {
	raw, okBody := readBody(c)
	if !okBody {
		return
	}
	res, err := h.invoices.IssueProduct(c.Request.Context(), c.Param("company_id"), raw)
	if err != nil {
		failErr(c, err)
		return
	}
	relay(c, res.Status, res)
}
