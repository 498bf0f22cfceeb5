package main

// @title FarmSight User Service API
// @version 1.0
// @description User management and authentication service for APS Intertrade agricultural supplies
// @termsOfService http://swagger.io/terms/

// @contact.name APS Intertrade IT
// @contact.email it@apsintertrade.example

// @license.name MIT

// @host localhost:8081
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Auth
// @tag.description Authentication endpoints

// @tag.name Users
// @tag.description User management endpoints

// @tag.name Admin
// @tag.description Admin-only endpoints

// @tag.name Health
// @tag.description Health check endpoints
