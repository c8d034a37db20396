package router

import (
	"github.com/factura/backend/internal/interfaces/http/handler"
	"github.com/gin-gonic/gin"
)

// Handlers groups the handlers mounted under the versioned API
type Handlers struct {
	System   *handler.SystemHandler
	Product  *handler.ProductHandler
	Customer *handler.CustomerHandler
	Invoice  *handler.InvoiceHandler
	Issuer   *handler.IssuerHandler
	Backup   *handler.BackupHandler
}

// Router manages HTTP route registration
type Router struct {
	engine     *gin.Engine
	apiVersion string
	handlers   Handlers
}

// RouterOption is a functional option for Router configuration
type RouterOption func(*Router)

// WithAPIVersion sets the API version prefix (e.g., "v1", "v2")
func WithAPIVersion(version string) RouterOption {
	return func(r *Router) {
		r.apiVersion = version
	}
}

// NewRouter creates a new Router instance
func NewRouter(engine *gin.Engine, handlers Handlers, opts ...RouterOption) *Router {
	r := &Router{
		engine:     engine,
		apiVersion: "v1",
		handlers:   handlers,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Setup registers all routes with the engine
func (r *Router) Setup() {
	api := r.engine.Group("/api/" + r.apiVersion)
	h := r.handlers

	system := api.Group("/system")
	system.GET("/ping", h.System.Ping)
	system.GET("/info", h.System.GetSystemInfo)

	catalog := api.Group("/catalog")
	catalog.POST("/products", h.Product.Create)
	catalog.GET("/products", h.Product.List)
	catalog.GET("/products/:id", h.Product.GetByID)
	catalog.PUT("/products/:id", h.Product.Update)
	catalog.DELETE("/products/:id", h.Product.Delete)

	partner := api.Group("/partner")
	partner.POST("/customers", h.Customer.Create)
	partner.GET("/customers", h.Customer.List)
	partner.GET("/customers/:id", h.Customer.GetByID)
	partner.PUT("/customers/:id", h.Customer.Update)
	partner.DELETE("/customers/:id", h.Customer.Delete)

	billing := api.Group("/billing")
	billing.POST("/invoices", h.Invoice.Create)
	billing.GET("/invoices", h.Invoice.List)
	billing.GET("/invoices/next-number", h.Invoice.NextNumber)
	billing.GET("/invoices/:id", h.Invoice.GetByID)
	billing.GET("/invoices/:id/pdf", h.Invoice.DownloadPDF)
	billing.GET("/issuer", h.Issuer.Get)
	billing.PUT("/issuer", h.Issuer.Update)

	transfer := api.Group("/transfer")
	transfer.GET("/backup", h.Backup.Export)
	transfer.POST("/backup", h.Backup.Import)
}
