package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"github.com/freelancehub/api/internal/config"
	"github.com/freelancehub/api/internal/db"
	"github.com/freelancehub/api/internal/handlers"
	"github.com/freelancehub/api/internal/middleware"
	"github.com/freelancehub/api/internal/models"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	if err := gdb.AutoMigrate(
		&models.User{},
		&models.FreelancerProfile{},
		&models.ClientProfile{},
		&models.Skill{},
		&models.FreelancerSkill{},
	); err != nil {
		log.Fatal(err)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendBaseURL,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders:    "Content-Length",
		AllowCredentials: true,
	}))

	app.Static("/uploads", cfg.UploadDir)

	authH := &handlers.AuthHandler{
		DB:        gdb,
		JWTSecret: cfg.JWTSecret,
		Expires:   cfg.JWTExpiresMin,
	}
	googleH := &handlers.GoogleOAuthHandler{
		DB:              gdb,
		JWTSecret:       cfg.JWTSecret,
		Expires:         cfg.JWTExpiresMin,
		GoogleClientID:  cfg.GoogleClientID,
		GoogleSecret:    cfg.GoogleSecret,
		GoogleRedirect:  cfg.GoogleRedirect,
		FrontendBaseURL: cfg.FrontendBaseURL,
	}
	freelancerH := handlers.NewFreelancerProfileHandler(gdb, cfg.UploadDir, cfg.PublicBaseURL)
	clientH := handlers.NewClientProfileHandler(gdb, cfg.UploadDir, cfg.PublicBaseURL)
	skillH := handlers.NewSkillHandler(gdb)
	searchH := handlers.NewSearchHandler(gdb)

	api := app.Group("/api")

	// public
	api.Post("/auth/register", authH.Register)
	api.Post("/auth/login", authH.Login)
	api.Post("/auth/logout", authH.Logout)
	api.Get("/auth/google/start", googleH.GoogleStart)
	api.Get("/auth/google/callback", googleH.GoogleCallback)
	api.Get("/skills", skillH.List)
	api.Get("/freelancers", searchH.List)
	api.Get("/freelancers/:id", freelancerH.Get)
	api.Get("/clients/:id", clientH.Get)

	// protected (JWT cookie)
	protected := api.Group("/",
		middleware.JWTFromCookie(cfg.JWTSecret),
		middleware.AttachJWTLocals(),
	)

	protected.Get("/me", authH.Me)
	protected.Post("/auth/change-password", authH.ChangePassword)

	// freelancer only
	protected.Patch("/freelancer/profile",
		middleware.RequireRoles("freelancer"),
		freelancerH.UpdateMine,
	)
	protected.Post("/freelancer/profile/avatar",
		middleware.RequireRoles("freelancer"),
		freelancerH.UploadAvatar,
	)
	protected.Post("/freelancer/skills",
		middleware.RequireRoles("freelancer"),
		skillH.AddFreelancerSkill,
	)
	protected.Delete("/freelancer/skills/:id",
		middleware.RequireRoles("freelancer"),
		skillH.RemoveFreelancerSkill,
	)

	// client only
	protected.Patch("/client/profile",
		middleware.RequireRoles("client"),
		clientH.UpdateMine,
	)
	protected.Post("/client/profile/avatar",
		middleware.RequireRoles("client"),
		clientH.UploadAvatar,
	)

	// admin only
	protected.Post("/admin/skills",
		middleware.RequireRoles("admin"),
		skillH.Create,
	)
	protected.Patch("/admin/skills/:id",
		middleware.RequireRoles("admin"),
		skillH.Update,
	)

	log.Fatal(app.Listen(":" + cfg.AppPort))
}
