package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/aps-intertrade/farmsight/api-gateway/config"
	"github.com/aps-intertrade/farmsight/api-gateway/health"
	"github.com/aps-intertrade/farmsight/api-gateway/middleware"
	"github.com/aps-intertrade/farmsight/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix      string
	ServiceName string
	Description string
	RequireAuth bool
}

// Routes holds all route definitions
var Routes = []RouteDefinition{
	// Public routes
	{
		Prefix:      "/auth",
		ServiceName: "user",
		Description: "Authentication endpoints (login, register)",
		RequireAuth: false,
	},

	// User service routes
	{
		Prefix:      "/api/users",
		ServiceName: "user",
		Description: "User profile endpoints",
		RequireAuth: true,
	},
	{
		Prefix:      "/admin",
		ServiceName: "user",
		Description: "User administration (admin only, enforced downstream)",
		RequireAuth: true,
	},

	// Inventory service routes
	{
		Prefix:      "/api/items",
		ServiceName: "inventory",
		Description: "Inventory item management",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/categories",
		ServiceName: "inventory",
		Description: "Category management",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/suppliers",
		ServiceName: "inventory",
		Description: "Supplier management",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/sales",
		ServiceName: "inventory",
		Description: "Sale and usage recording",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/dashboard",
		ServiceName: "inventory",
		Description: "Dashboard statistics",
		RequireAuth: true,
	},

	// Notification service routes
	{
		Prefix:      "/api/notifications",
		ServiceName: "notification",
		Description: "Notification management",
		RequireAuth: true,
	},
	{
		Prefix:      "/api/activity",
		ServiceName: "notification",
		Description: "Stock movement audit trail",
		RequireAuth: true,
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig, cbManager *middleware.CircuitBreakerManager) {
	reverseProxy := proxy.NewReverseProxy(cfg)
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks downstream services)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllServices(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// Detailed service health checks
	app.Get("/health/services", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		return c.JSON(healthChecker.CheckAllServices(ctx))
	})

	// Circuit breaker and load balancer stats
	app.Get("/gateway/stats", func(c *fiber.Ctx) error {
		lbStats := make(map[string]interface{})
		for name, lb := range reverseProxy.GetLoadBalancers() {
			lbStats[name] = lb.GetStats()
		}

		return c.JSON(fiber.Map{
			"circuit_breakers": cbManager.GetAllStats(),
			"load_balancers":   lbStats,
		})
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "FarmSight API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy)
	}
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy) {
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	var middlewares []fiber.Handler
	if route.RequireAuth {
		middlewares = append(middlewares, middleware.AuthMiddleware())
	}

	group := app.Group(route.Prefix, middlewares...)
	group.All("/*", handler)

	// Also handle the exact prefix path (without /*)
	if len(middlewares) > 0 {
		app.All(route.Prefix, append(middlewares, handler)...)
	} else {
		app.All(route.Prefix, handler)
	}
}
