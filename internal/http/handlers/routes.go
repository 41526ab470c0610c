package handlers

import "github.com/gin-gonic/gin"

// Register mounts every API endpoint on api (normally the /api group).
func (h *Handlers) Register(api gin.IRoutes) {
	// Dashboard
	api.GET("/metrics", h.GetMetrics)
	api.GET("/health", h.Health)

	// Chat identities and messages
	api.POST("/messages", h.RecordMessage)
	api.GET("/users/count", h.CountUsers)
	api.PUT("/users/:chatId/cooldown", h.SetCooldown)

	// User info
	api.GET("/userInfo", h.GetUserInfoByQuery)
	api.POST("/userInfo", h.RegisterUserInfo)
	api.PUT("/userInfo", h.UpdateUserInfoByBody)
	api.DELETE("/userInfo", h.DeleteUserInfoByBody)
	api.GET("/userInfo/:chatId", h.GetUserInfo)
	api.PUT("/userInfo/:chatId", h.UpdateUserInfo)
	api.DELETE("/userInfo/:chatId", h.DeleteUserInfo)

	// Companies
	api.POST("/companies", h.CreateCompany)
	api.GET("/companies/:cnpj", h.GetCompany)
	api.PUT("/companies/:cnpj", h.UpdateCompany)
	api.DELETE("/companies/:cnpj", h.DeleteCompany)
	api.POST("/company", h.CreateCompany)
	api.GET("/company", h.FindCompanies)
	api.PUT("/company", h.UpdateCompanyByBody)
	api.DELETE("/company", h.DeleteCompanyByQuery)

	// Transactions
	api.POST("/transactions", h.RegisterTransaction)
	api.PUT("/transactions", h.UpdateTransactionByBody)
	api.DELETE("/transactions", h.DeleteTransactionByBody)
	api.GET("/transactions/:chatId", h.ListTransactions)
	api.PUT("/transactions/update/:id", h.UpdateTransaction)
	api.DELETE("/transactions/delete/:id", h.DeleteTransaction)

	// Feedback
	api.POST("/feedback", h.CreateFeedback)
	api.GET("/feedback", h.ListFeedback)
	api.GET("/feedback/:id", h.GetFeedback)
	api.DELETE("/feedback/:id", h.DeleteFeedback)

	// NFE.io proxy
	api.POST("/nfe/ServiceInvoices", h.IssueServiceInvoiceLegacy)

	api.POST("/nfe/v1/Companies", h.CreateCompanyV1)
	api.GET("/nfe/v1/Companies/:company_id", h.GetCompanyV1)
	api.PUT("/nfe/v1/Companies/:company_id", h.UpdateCompanyV1)
	api.DELETE("/nfe/v1/Companies/:company_id", h.DeleteCompanyV1)

	api.POST("/nfe/v1/ServiceInvoices/:company_id", h.IssueServiceInvoice)
	api.GET("/nfe/v1/ServiceInvoices/:company_id/invoiceId/:invoice_id", h.GetServiceInvoice)
	api.PUT("/nfe/v1/ServiceInvoices/:company_id/invoiceId/:invoice_id", h.SendServiceInvoiceEmail)
	api.GET("/nfe/v1/ServiceInvoices/:company_id/invoiceId/:invoice_id/pdf", h.ServiceInvoicePDF)
	api.GET("/nfe/v1/ServiceInvoices/:company_id/invoiceId/:invoice_id/xml", h.ServiceInvoiceXML)

	api.GET("/nfe/v2/Companies", h.ListCompaniesV2)
	api.POST("/nfe/v2/Companies", h.CreateCompanyV2)
	api.GET("/nfe/v2/Companies/:company_id", h.GetCompanyV2)
	api.PUT("/nfe/v2/Companies/:company_id", h.UpdateCompanyV2)
	api.DELETE("/nfe/v2/Companies/:company_id", h.DeleteCompanyV2)

	api.POST("/nfe/v2/ProductInvoices/:company_id", h.IssueProductInvoice)
}
