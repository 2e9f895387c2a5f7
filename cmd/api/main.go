package main

import (
	"fmt"
	"net/http"

	"github.com/pontolabs/ponto-backend-go/internal/config"
	appHTTP "github.com/pontolabs/ponto-backend-go/internal/handler/http"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/oauth"
	"github.com/pontolabs/ponto-backend-go/internal/repository/postgresql"
	authService "github.com/pontolabs/ponto-backend-go/internal/service/auth"
	balanceService "github.com/pontolabs/ponto-backend-go/internal/service/balance"
	exportService "github.com/pontolabs/ponto-backend-go/internal/service/export"
	holidayService "github.com/pontolabs/ponto-backend-go/internal/service/holiday"
	recordService "github.com/pontolabs/ponto-backend-go/internal/service/record"
	userService "github.com/pontolabs/ponto-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	recordRepo := postgresql.NewRecordRepository(db)
	activityRepo := postgresql.NewActivityRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	authSvc := authService.NewAuthService(db, userRepo, JWTService, JWTRepository, GoogleService)
	userSvc := userService.NewUserService(userRepo)
	recordSvc := recordService.NewRecordService(db, recordRepo, activityRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	balanceSvc := balanceService.NewBalanceService(userRepo, recordRepo, holidayRepo)
	exportSvc := exportService.NewExportService()

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, cfg.App.FrontendURL)
	userHandler := appHTTP.NewUserHandler(userSvc)
	recordHandler := appHTTP.NewRecordHandler(recordSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	dashboardHandler := appHTTP.NewDashboardHandler(balanceSvc)
	reportHandler := appHTTP.NewReportHandler(balanceSvc, userSvc, exportSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		userHandler,
		recordHandler,
		holidayHandler,
		dashboardHandler,
		reportHandler,
		cfg.App.FrontendURL,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
