package main

// @title FarmSight Notification Service API
// @version 1.0
// @description Notification and activity log service for APS Intertrade agricultural supplies
// @termsOfService http://swagger.io/terms/

// @contact.name APS Intertrade IT
// @contact.email it@apsintertrade.example

// @license.name MIT

// @host localhost:8083
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name notifications
// @tag.description Notification endpoints

// @tag.name activity
// @tag.description Stock movement audit trail endpoints
