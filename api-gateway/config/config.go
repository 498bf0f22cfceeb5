package config

import (
	"os"
	"strings"
	"time"
)

// ServiceConfig holds configuration for a backend service
type ServiceConfig struct {
	Name        string
	BaseURL     string
	Instances   []string
	Timeout     time.Duration
	HealthCheck string
}

// GatewayConfig holds the main gateway configuration
type GatewayConfig struct {
	Port     string
	Services map[string]ServiceConfig
}

// LoadConfig loads the gateway configuration
func LoadConfig() *GatewayConfig {
	return &GatewayConfig{
		Port: getEnv("GATEWAY_PORT", "8000"),
		Services: map[string]ServiceConfig{
			"user": {
				Name:        "user-service",
				BaseURL:     getEnv("USER_SERVICE_URL", "http://localhost:8081"),
				Instances:   getInstances("USER_SERVICE_INSTANCES", "USER_SERVICE_URL", "http://localhost:8081"),
				Timeout:     30 * time.Second,
				HealthCheck: "/health",
			},
			"inventory": {
				Name:        "inventory-service",
				BaseURL:     getEnv("INVENTORY_SERVICE_URL", "http://localhost:8082"),
				Instances:   getInstances("INVENTORY_SERVICE_INSTANCES", "INVENTORY_SERVICE_URL", "http://localhost:8082"),
				Timeout:     30 * time.Second,
				HealthCheck: "/health",
			},
			"notification": {
				Name:        "notification-service",
				BaseURL:     getEnv("NOTIFICATION_SERVICE_URL", "http://localhost:8083"),
				Instances:   getInstances("NOTIFICATION_SERVICE_INSTANCES", "NOTIFICATION_SERVICE_URL", "http://localhost:8083"),
				Timeout:     30 * time.Second,
				HealthCheck: "/health",
			},
		},
	}
}

// getInstances reads a comma-separated instance list, falling back to
// the single base URL
func getInstances(instancesKey, urlKey, defaultURL string) []string {
	if value := os.Getenv(instancesKey); value != "" {
		var instances []string
		for _, instance := range strings.Split(value, ",") {
			if trimmed := strings.TrimSpace(instance); trimmed != "" {
				instances = append(instances, trimmed)
			}
		}
		if len(instances) > 0 {
			return instances
		}
	}
	return []string{getEnv(urlKey, defaultURL)}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
