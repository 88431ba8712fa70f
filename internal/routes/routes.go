package routes

import (
	"github.com/gin-gonic/gin"

	"velora_back_office/internal/database"
	"velora_back_office/internal/handlers/brand"
	"velora_back_office/internal/handlers/inventory"
	"velora_back_office/internal/handlers/notifications"
	"velora_back_office/internal/handlers/product"
	"velora_back_office/internal/handlers/uploads"
	"velora_back_office/internal/handlers/user"
	"velora_back_office/internal/notify"
)

func RegisterRoutes(r *gin.Engine) {
	// File de notifications partagée par les handlers
	notifier := notify.New(database.Redis)
	product.Init(notifier)
	brand.Init(notifier)
	notifications.Init(notifier)

	api := r.Group("/api")

	// Produits
	api.GET("/products", product.ListProducts)
	api.GET("/products/:id", product.GetProduct)
	api.POST("/products", product.CreateProduct)
	api.PATCH("/products/:id", product.UpdateProduct)
	api.DELETE("/products/:id", product.DeleteProduct)

	// Catégories (select du formulaire produit)
	api.GET("/categories", product.GetCategories)

	// Marques
	api.GET("/brands", brand.GetBrands)
	api.GET("/brands/:id", brand.GetBrand)
	api.POST("/brands", brand.CreateBrand)
	api.PATCH("/brands/:id", brand.UpdateBrand)
	api.DELETE("/brands/:id", brand.DeleteBrand)

	api.GET("/brands/:id/products", product.ListProductsByBrand)

	// Commandes journalières (triage des ruptures)
	api.GET("/brands/:id/daily-orders", brand.GetDailyOrders)
	api.POST("/brands/:id/daily-orders/submit", brand.SubmitDailyOrders)

	// Soft inventory
	api.GET("/soft-inventory", inventory.GetSoftInventory)

	// Uploads (chemin de mise à jour produit : upload puis PATCH)
	api.POST("/uploads", uploads.UploadFiles)

	// Clients (lecture seule)
	api.GET("/users/:id", user.GetUser)

	// Notifications du back-office
	api.GET("/notifications", notifications.ListNotifications)
	api.POST("/notifications/:id/dismiss", notifications.DismissNotification)
}
