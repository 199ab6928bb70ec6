package main

import (
	"fmt"
	"log"
	"os"

	"rentsafe-server/routes"
	"rentsafe-server/storage"
	"rentsafe-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	// Only load .env in development
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS for the Vite dev frontend
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		err := ctx.ReadJSON(&tokenInput)
		if err != nil {
			return ""
		}
		return tokenInput.RefreshToken
	})

	app.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	auth := app.Party("/api/auth")
	{
		auth.Get("/login-mydigitalid", routes.LoginMyDigitalID)
		auth.Get("/mydigitalid/callback", routes.MyDigitalIDCallback)
		auth.Post("/role", accessTokenVerifierMiddleware, routes.SetRole)
	}

	users := app.Party("/api/users")
	{
		users.Get("/{ic}", accessTokenVerifierMiddleware, routes.GetPerson)
		users.Get("/{ic}/landlord-dashboard", routes.LandlordDashboard)
		users.Get("/{ic}/rental-history", routes.TenantRentalHistory)
	}

	landlord := app.Party("/api/landlord")
	{
		landlord.Get("/{ic}/tenant-history", routes.LandlordTenantHistory)
	}

	properties := app.Party("/api/properties")
	{
		properties.Get("/all", routes.GetAllProperties)
		properties.Post("/create", accessTokenVerifierMiddleware, utils.LandlordOnlyMiddleware, routes.CreateProperty)
		properties.Get("/{id}", routes.GetProperty)
		properties.Put("/{id}/update", accessTokenVerifierMiddleware, utils.LandlordOnlyMiddleware, routes.UpdateProperty)
		properties.Delete("/{id}/delete", accessTokenVerifierMiddleware, utils.LandlordOnlyMiddleware, routes.DeleteProperty)
		properties.Get("/{id}/applications", routes.GetPropertyApplications)
	}

	applications := app.Party("/api/applications")
	{
		applications.Post("/", accessTokenVerifierMiddleware, utils.TenantOnlyMiddleware, routes.CreateApplication)
		applications.Get("/{id}", routes.GetApplication)
		applications.Get("/tenant/{ic}", routes.GetTenantApplications)
		applications.Post("/{id}/approve", accessTokenVerifierMiddleware, utils.LandlordOnlyMiddleware, routes.ApproveApplication)
		applications.Post("/{id}/reject", accessTokenVerifierMiddleware, utils.LandlordOnlyMiddleware, routes.RejectApplication)
	}

	contracts := app.Party("/api/contracts")
	{
		contracts.Get("/{id}", routes.GetContract)
		contracts.Post("/{id}/upload-photos", accessTokenVerifierMiddleware, utils.LandlordOnlyMiddleware, routes.UploadContractPhotos)
		contracts.Post("/{id}/approve-photos", accessTokenVerifierMiddleware, utils.TenantOnlyMiddleware, routes.ApproveContractPhotos)
		contracts.Post("/{id}/reject-photos", accessTokenVerifierMiddleware, utils.TenantOnlyMiddleware, routes.RejectContractPhotos)
		contracts.Post("/{id}/tenant/sign", accessTokenVerifierMiddleware, utils.TenantOnlyMiddleware, routes.TenantSignContract)
		contracts.Post("/{id}/landlord/sign", accessTokenVerifierMiddleware, utils.LandlordOnlyMiddleware, routes.LandlordSignContract)
	}

	escrow := app.Party("/api/escrow")
	{
		escrow.Post("/", accessTokenVerifierMiddleware, utils.TenantOnlyMiddleware, routes.OpenEscrow)
		escrow.Get("/{contractId}", routes.GetEscrowByContract)
		escrow.Post("/{id}/request-release", accessTokenVerifierMiddleware, utils.TenantOnlyMiddleware, routes.RequestEscrowRelease)
		escrow.Post("/{id}/approve-release", accessTokenVerifierMiddleware, utils.LandlordOnlyMiddleware, routes.ApproveEscrowRelease)
		escrow.Post("/{id}/reject-release", accessTokenVerifierMiddleware, utils.LandlordOnlyMiddleware, routes.RejectEscrowRelease)
	}

	notifications := app.Party("/api/notifications")
	{
		notifications.Get("/", accessTokenVerifierMiddleware, routes.GetMyNotifications)
		notifications.Patch("/{id}/read", accessTokenVerifierMiddleware, routes.MarkNotificationRead)
	}

	app.Post("/api/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8889"
	}
	addr := "0.0.0.0:" + port

	fmt.Printf("Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
