package routes

import (
	"net/http"

	"teamtrack-backend/internal/api/handlers"
	"teamtrack-backend/internal/api/middleware"
	"teamtrack-backend/internal/auth"
	"teamtrack-backend/internal/config"
	"teamtrack-backend/internal/logger"
	"teamtrack-backend/internal/repository"
	"teamtrack-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()
	log := logger.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	clientRepo := repository.NewClientRepository(db)
	subclientRepo := repository.NewSubclientRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	callRepo := repository.NewCallRepository(db)
	insightRepo := repository.NewInsightRepository(db)
	embeddingRepo := repository.NewEmbeddingRepository(db)
	authLogRepo := repository.NewAuthLogRepository(db)

	// Initialize external clients
	identityClient := service.NewIdentityClient(cfg.IdentityBaseURL, cfg.IdentityAPIKey)
	completionClient := service.NewCompletionClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey)
	embeddingClient := service.NewEmbeddingClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey)

	// Initialize agent configuration
	agentsConfig, err := service.LoadAgentsConfig(cfg.AgentConfigPath)
	if err != nil {
		log.WithError(err).Warn("Failed to load agents config, using built-in definitions")
		agentsConfig = nil
	}

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, employeeRepo, identityClient, validator, log)
	employeeService := service.NewEmployeeService(employeeRepo, validator)
	clientService := service.NewClientService(clientRepo)
	subclientService := service.NewSubclientService(subclientRepo, clientRepo)
	projectService := service.NewProjectService(projectRepo, employeeRepo, callRepo)
	callService := service.NewCallService(callRepo, projectRepo, subclientRepo, employeeRepo, insightRepo)
	agentService := service.NewAgentService(completionClient, agentsConfig, log)
	insightService := service.NewInsightService(callRepo, insightRepo, agentService, log)
	embeddingService := service.NewEmbeddingService(callRepo, embeddingRepo, embeddingClient)
	authService := service.NewAuthService(organizationRepo, employeeRepo, authLogRepo, log)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	organizationHandler := handlers.NewOrganizationHandler(organizationService, clientService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService, projectService, clientService)
	projectHandler := handlers.NewProjectHandler(projectService)
	subclientHandler := handlers.NewSubclientHandler(subclientService)
	callHandler := handlers.NewCallHandler(callService, embeddingService)
	insightHandler := handlers.NewInsightHandler(insightService)
	agentHandler := handlers.NewAgentHandler(agentService)
	authHandler := handlers.NewAuthHandler(authService)

	// Gate stages. Ordering is significant: RequireActiveOrg reads the
	// organization id that RequireRole puts on the context.
	requireAdmin := auth.RequireAdmin(employeeRepo)
	requireEmployee := auth.RequireEmployee(employeeRepo)
	requireAuth := auth.RequireAuth(employeeRepo)
	requireActiveOrg := auth.RequireActiveOrg(organizationRepo)

	// Open routes
	router.GET("/", healthHandler.Welcome)
	router.GET("/health", healthHandler.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Organization routes
	router.POST("/organizations/create", organizationHandler.SignUp)
	router.POST("/organization/update", requireAdmin, requireActiveOrg, organizationHandler.Update)
	router.POST("/organization/deactivate", requireAdmin, organizationHandler.Deactivate)
	router.POST("/organization/clients", requireAdmin, requireActiveOrg, organizationHandler.ListClients)

	// Employee routes
	router.POST("/employee/create", requireAdmin, requireActiveOrg, employeeHandler.Create)
	router.GET("/employee/projects", employeeHandler.Projects)
	router.POST("/employee/clients", requireEmployee, requireActiveOrg, employeeHandler.Clients)
	router.POST("/employee/calls/schedule", requireEmployee, requireActiveOrg, callHandler.Schedule)
	router.POST("/employee/calls/recent", requireEmployee, requireActiveOrg, callHandler.Recent)

	// Project routes
	router.POST("/project/create", requireAdmin, requireActiveOrg, projectHandler.Create)
	router.POST("/project/assign", requireAdmin, requireActiveOrg, projectHandler.Assign)
	router.POST("/project/call/insight", requireEmployee, requireActiveOrg, callHandler.Insights)

	// Subclient routes
	router.POST("/client/subclient/create", requireAuth, requireActiveOrg, subclientHandler.Create)
	router.POST("/client/subclient/update", requireAuth, requireActiveOrg, subclientHandler.Update)
	router.POST("/client/subclient/delete", requireAuth, requireActiveOrg, subclientHandler.Delete)

	// Auth routes
	router.POST("/auth/google/callback", authHandler.GoogleCallback)

	// Insight and embedding routes
	router.POST("/call/insight/new", requireAuth, insightHandler.NewInsight)
	router.POST("/call/embedding/new", callHandler.NewEmbedding)

	// Agent routes
	router.POST("/agent/txt", requireAuth, agentHandler.Txt)
	router.POST("/agent/email", agentHandler.Email)
	router.POST("/agent/pdf", requireAuth, agentHandler.PDF)

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return router
}
