package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Roles que pueden revertir movimientos.
var cancelRoles = []string{"admin", "manager"}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger     Ledger
	Lookups    Lookups
	Reports    Reports
	WorkOrders WorkOrders
	Auth       Authenticator
	Guard      SubmissionGuard // nil = sin guardia de doble envío
	AuthConfig AuthConfig
	Log        zerolog.Logger
}

// Router registra las rutas de la API bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	sys := deps.AuthConfig.SystemUser

	// Auth (público)
	authHandler := NewAuthHandler(deps.Auth, deps.Log)
	api.Post("/auth/login", authHandler.Login)

	// Resto: token obligatorio u opcional según AUTH_REQUIRED
	protected := api.Group("/", AuthMiddleware(deps.AuthConfig), SubmitGuard(deps.Guard))

	common := protected.Group("/common")
	commonHandler := NewCommonHandler(deps.Lookups, deps.Log)
	common.Get("/combo", commonHandler.Combo)
	common.Get("/warehouses", commonHandler.Warehouses)
	common.Get("/lines", commonHandler.Lines)
	common.Get("/kanban", commonHandler.Kanban)

	material := protected.Group("/material")
	materialHandler := NewMaterialHandler(deps.Ledger, deps.Lookups, deps.Reports, sys, deps.Log)
	material.Get("/barcode", materialHandler.Barcode)
	material.Post("/issue-no-slip", materialHandler.IssueNoSlip)
	material.Post("/issue-slip", materialHandler.IssueSlip)
	material.Post("/receive", materialHandler.Receive)
	material.Get("/receive", materialHandler.ReceiveHistory)
	material.Get("/receive/export", materialHandler.ExportReceipts)
	material.Post("/receive-cancel", RequireRole(cancelRoles...), materialHandler.ReceiveCancel)
	material.Post("/release", materialHandler.Release)
	material.Get("/stocktaking", materialHandler.StocktakeLookup)
	material.Post("/stocktaking", materialHandler.Stocktake)

	productionHandler := NewProductionHandler(deps.Ledger, deps.WorkOrders, sys, deps.Log)
	production := protected.Group("/production")
	production.Post("/smd-check", productionHandler.SMDCheck)
	production.Post("/parts-input", productionHandler.PartsInput)
	production.Post("/input-cancel", RequireRole(cancelRoles...), productionHandler.InputCancel)
	production.Post("/assembly-result", productionHandler.AssemblyResult)

	plan := protected.Group("/plan")
	plan.Post("/check", productionHandler.PlanCheck)
	plan.Post("/work", productionHandler.Work)
	plan.Post("/next-work", productionHandler.NextWork)

	shipmentHandler := NewShipmentHandler(deps.Ledger, deps.Lookups, deps.Reports, sys, deps.Log)
	protected.Post("/shipment", shipmentHandler.Ship)
	protected.Get("/shipment/round", shipmentHandler.Round)
	protected.Get("/shipment/:shipNo/slip", shipmentHandler.Slip)
	protected.Post("/outsourcing", shipmentHandler.Outsource)
	protected.Post("/return/individual", shipmentHandler.ReturnIndividual)
}
