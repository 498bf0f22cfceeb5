package main

// @title FarmSight Inventory Service API
// @version 1.0
// @description Inventory and sales recording service for APS Intertrade agricultural supplies
// @termsOfService http://swagger.io/terms/

// @contact.name APS Intertrade IT
// @contact.email it@apsintertrade.example

// @license.name MIT

// @host localhost:8082
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name Items
// @tag.description Inventory item management endpoints

// @tag.name Categories
// @tag.description Category management endpoints

// @tag.name Suppliers
// @tag.description Supplier management endpoints

// @tag.name Sales
// @tag.description Sale and usage recording endpoints

// @tag.name Dashboard
// @tag.description Aggregated statistics endpoints

// @tag.name Health
// @tag.description Health check endpoints
