package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/azaeldev/gestion-hotel/internal/audit"
	"github.com/azaeldev/gestion-hotel/internal/auth"
	"github.com/azaeldev/gestion-hotel/internal/config"
	"github.com/azaeldev/gestion-hotel/internal/handlers"
	infraRepo "github.com/azaeldev/gestion-hotel/internal/infra/repository"
	"github.com/azaeldev/gestion-hotel/internal/middleware"
	ucPayment "github.com/azaeldev/gestion-hotel/internal/usecase/payment"
	ucReservation "github.com/azaeldev/gestion-hotel/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	reservaRepo := infraRepo.NewReservaGormRepository(db)
	pagoRepo := infraRepo.NewPagoGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — RESERVAS
	// ======================================================
	createReservaUC := ucReservation.NewCreateReservation(
		reservaRepo,
		auditDispatcher,
	)

	updateReservaUC := ucReservation.NewUpdateReservation(
		reservaRepo,
		auditDispatcher,
	)

	deleteReservaUC := ucReservation.NewDeleteReservation(
		reservaRepo,
		auditDispatcher,
	)

	searchReservasUC := ucReservation.NewSearchReservations(reservaRepo)

	// ======================================================
	// 🧠 USE CASES — PAGOS
	// ======================================================
	createPagoUC := ucPayment.NewCreatePayment(
		pagoRepo,
		auditDispatcher,
	)

	deletePagoUC := ucPayment.NewDeletePayment(
		pagoRepo,
		auditDispatcher,
	)

	listPagosReservaUC := ucPayment.NewListPaymentsByReservation(pagoRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher)
	meHandler := handlers.NewMeHandler(db)

	clienteHandler := handlers.NewClienteHandler(db)
	habitacionHandler := handlers.NewHabitacionHandler(db)
	metodoPagoHandler := handlers.NewMetodoPagoHandler(db)
	usuarioHandler := handlers.NewUsuarioHandler(db)

	reservaHandler := handlers.NewReservaHandler(
		db,
		createReservaUC,
		updateReservaUC,
		deleteReservaUC,
		searchReservasUC,
	)

	pagoHandler := handlers.NewPagoHandler(
		pagoRepo,
		createPagoUC,
		deletePagoUC,
		listPagosReservaUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	adminOnly := middleware.RequireRoles(auth.RoleAdministrador)
	recepcion := middleware.RequireRoles(
		auth.RoleAdministrador,
		auth.RoleRecepcionista,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		api.GET("/habitaciones", habitacionHandler.List)
		api.GET("/habitaciones/buscar", habitacionHandler.Buscar)
		api.GET("/habitaciones/:id", habitacionHandler.Get)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.POST("/auth/register", adminOnly, authHandler.Register)

			secured.GET("/me", meHandler.GetMe)

			// CLIENTES
			secured.GET("/clientes", recepcion, clienteHandler.List)
			secured.GET("/clientes/buscar", recepcion, clienteHandler.Buscar)
			secured.GET("/clientes/:id", recepcion, clienteHandler.Get)
			secured.POST("/clientes", recepcion, clienteHandler.Create)
			secured.PUT("/clientes/:id", recepcion, clienteHandler.Update)
			secured.DELETE("/clientes/:id", adminOnly, clienteHandler.Delete)

			// HABITACIONES (la lectura es pública)
			secured.POST("/habitaciones", adminOnly, habitacionHandler.Create)
			secured.PUT("/habitaciones/:id", adminOnly, habitacionHandler.Update)
			secured.DELETE("/habitaciones/:id", adminOnly, habitacionHandler.Delete)

			// MÉTODOS DE PAGO
			secured.GET("/metodos-pago", metodoPagoHandler.List)
			secured.POST("/metodos-pago", adminOnly, metodoPagoHandler.Create)
			secured.PUT("/metodos-pago/:id", adminOnly, metodoPagoHandler.Update)
			secured.DELETE("/metodos-pago/:id", adminOnly, metodoPagoHandler.Delete)

			// RESERVAS
			secured.GET("/reservas", recepcion, reservaHandler.List)
			secured.GET("/reservas/buscar", recepcion, reservaHandler.Buscar)
			secured.GET("/reservas/:id", recepcion, reservaHandler.Get)
			secured.POST("/reservas", recepcion, reservaHandler.Create)
			secured.PUT("/reservas/:id", recepcion, reservaHandler.Update)
			secured.DELETE("/reservas/:id", adminOnly, reservaHandler.Delete)

			// PAGOS
			secured.GET("/pagos", pagoHandler.List)
			secured.GET("/pagos/:reservaId", pagoHandler.ListByReserva)
			secured.POST("/pagos", pagoHandler.Create)
			secured.DELETE("/pagos/:id", adminOnly, pagoHandler.Delete)

			// USUARIOS
			secured.GET("/usuarios", adminOnly, usuarioHandler.List)
			secured.GET("/usuarios/:id", adminOnly, usuarioHandler.Get)
			secured.PUT("/usuarios/:id", adminOnly, usuarioHandler.Update)
			secured.DELETE("/usuarios/:id", adminOnly, usuarioHandler.Delete)

			secured.GET("/audit-logs", adminOnly, auditLogsHandler.List)
		}
	}
}
