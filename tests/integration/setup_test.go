package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"jobboard/internal/handlers"
	"jobboard/internal/logger"
	"jobboard/internal/middleware"
	"jobboard/internal/models"
	"jobboard/internal/services"
	"jobboard/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.Company{},
		&models.Advertisement{},
		&models.Application{},
		&models.ApplicationLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db)
	companyService := services.NewCompanyService(db)
	advertisementService := services.NewAdvertisementService(db)
	applicationService := services.NewApplicationService(db)
	applicationLogService := services.NewApplicationLogService(db)
	statsService := services.NewStatsService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	advertisementHandler := handlers.NewAdvertisementHandler(advertisementService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, applicationLogService)
	applicationLogHandler := handlers.NewApplicationLogHandler(applicationLogService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	v1.GET("/profile", middleware.AuthMiddleware(), authHandler.GetProfile)

	v1.GET("/stats", statsHandler.GetStats)

	users := v1.Group("/users")
	users.GET("", userHandler.GetUsers)
	users.GET("/:id", userHandler.GetUserByID)
	users.DELETE("/:id", userHandler.DeleteUser)

	companies := v1.Group("/companies")
	companies.GET("", companyHandler.GetCompanies)
	companies.GET("/:id", companyHandler.GetCompanyByID)
	companies.POST("", middleware.AuthMiddleware(), companyHandler.CreateCompany)
	companies.PUT("/:id", middleware.AuthMiddleware(), companyHandler.UpdateCompany)
	companies.DELETE("/:id", middleware.AuthMiddleware(), companyHandler.DeleteCompany)

	advertisements := v1.Group("/advertisements")
	advertisements.GET("", advertisementHandler.GetAdvertisements)
	advertisements.GET("/:id", advertisementHandler.GetAdvertisementByID)
	advertisements.POST("", middleware.AuthMiddleware(), advertisementHandler.CreateAdvertisement)
	advertisements.PUT("/:id", middleware.AuthMiddleware(), advertisementHandler.UpdateAdvertisement)
	advertisements.DELETE("/:id", middleware.AuthMiddleware(), advertisementHandler.DeleteAdvertisement)

	applications := v1.Group("/applications")
	applications.POST("", middleware.AuthMiddleware(), applicationHandler.SubmitApplication)
	applications.GET("", applicationHandler.GetApplications)
	applications.GET("/:id", applicationHandler.GetApplicationByID)
	applications.GET("/:id/logs", applicationHandler.GetApplicationTrail)
	applications.GET("/user/:user_id", applicationHandler.GetApplicationsByUser)
	applications.PUT("/:id", applicationHandler.UpdateApplication)
	applications.DELETE("/:id", applicationHandler.DeleteApplication)

	applicationLogs := v1.Group("/application_logs")
	applicationLogs.POST("", applicationLogHandler.CreateApplicationLog)
	applicationLogs.GET("", applicationLogHandler.GetApplicationLogs)
	applicationLogs.GET("/:id", applicationLogHandler.GetApplicationLogByID)
	applicationLogs.DELETE("/:id", applicationLogHandler.DeleteApplicationLog)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the token and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (token string, userID float64) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"first_name":"Test","last_name":"User"}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(float64)
}

// registerAdmin registers a user, promotes it to admin, and logs in again so
// the returned token carries the admin claim.
func (app *testApp) registerAdmin(t *testing.T, email, password string) (token string, userID float64) {
	t.Helper()
	_, userID = app.registerUser(t, email, password)
	if err := app.DB.Model(&models.User{}).Where("id = ?", uint(userID)).Update("is_admin", true).Error; err != nil {
		t.Fatalf("failed to promote admin: %v", err)
	}

	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("admin login failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["token"].(string), userID
}

// setUserCV stores a CV path on the user's profile directly.
func (app *testApp) setUserCV(t *testing.T, userID float64, path string) {
	t.Helper()
	if err := app.DB.Model(&models.User{}).Where("id = ?", uint(userID)).Update("cv", path).Error; err != nil {
		t.Fatalf("failed to set CV: %v", err)
	}
}

// createAdvertisement creates a company and an advertisement for it, returning
// the advertisement ID. Requires an admin token.
func (app *testApp) createAdvertisement(t *testing.T, adminToken, title string) float64 {
	t.Helper()
	rec := app.request("POST", "/api/v1/companies", `{"name":"Acme","city":"Berlin"}`, adminToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create company failed: %d %s", rec.Code, rec.Body.String())
	}
	companyID := parseJSON(t, rec)["company"].(map[string]interface{})["id"].(float64)

	body := fmt.Sprintf(`{"title":%q,"short_description":"Short","description":"Long description","publish_date":"2025-05-01","company_id":%.0f}`, title, companyID)
	rec = app.request("POST", "/api/v1/advertisements", body, adminToken)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create advertisement failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["advertisement"].(map[string]interface{})["id"].(float64)
}
