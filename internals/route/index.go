// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"obetrack_backend/internals/configs"
	authMiddleware "obetrack_backend/internals/middlewares/auth"
	routeDetails "obetrack_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	// PUBLIC → read-only, tanpa login
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// ADMIN → dosen/akademik, JWT wajib
	log.Println("[INFO] Setting up ADMIN group (Auth)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              configs.JWTSecret,
			AllowCookieFallback: true,
		}),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting OBE routes...")
	routeDetails.OBEPublicRoutes(public, db)
	routeDetails.OBEAdminRoutes(admin, db)
}
