package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/flashfiesta/backend/internal/middleware/auth"
)

type Deps struct {
	AuthHandler     *AuthHTTP
	CatalogHandler  *CatalogHTTP
	OrderHandler    *OrderHTTP
	ShoppingHandler *ShoppingHTTP
	AuthMW          *authmw.Middleware
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.POST("/token/refresh", d.AuthHandler.Refresh)

	authed := auth.Group("", d.AuthMW.RequireAuth)
	authed.POST("/logout", d.AuthHandler.Logout)
	authed.GET("/profile", d.AuthHandler.GetProfile)
	authed.POST("/profile/update", d.AuthHandler.UpdateProfile)
	authed.GET("/employees", d.AuthHandler.ListEmployees)
	authed.POST("/employees/update-permissions/:id", d.AuthHandler.UpdateEmployeePermissions)

	products := api.Group("/products")
	products.GET("/Products", d.CatalogHandler.ListProducts)
	products.GET("/Products/:id", d.CatalogHandler.GetProduct)
	products.GET("/Categories", d.CatalogHandler.ListCategories)
	products.GET("/Suggestions", d.CatalogHandler.Suggestions)

	gated := products.Group("", d.AuthMW.RequireAuth)
	gated.POST("/CreateProducts", d.CatalogHandler.CreateProduct)
	gated.POST("/UpdateProduct/:id", d.CatalogHandler.UpdateProduct)
	gated.POST("/DeleteProduct/:id", d.CatalogHandler.DeleteProduct)
	gated.POST("/CreateCategory", d.CatalogHandler.CreateCategory)
	gated.POST("/UpdateCategory/:id", d.CatalogHandler.UpdateCategory)
	gated.POST("/DeleteCategory/:id", d.CatalogHandler.DeleteCategory)
	gated.POST("/CreateReview", d.ShoppingHandler.CreateReview)
	gated.POST("/Wishlist/Toggle", d.ShoppingHandler.ToggleWishlist)
	gated.GET("/Wishlist", d.ShoppingHandler.ListWishlist)
	gated.POST("/Cart/Sync", d.ShoppingHandler.SyncCart)
	gated.GET("/Cart", d.ShoppingHandler.GetCart)
	gated.GET("/dashboard-stats", d.ShoppingHandler.DashboardStats)

	orders := api.Group("/order", d.AuthMW.RequireAuth)
	orders.POST("/place", d.OrderHandler.PlaceOrder)
	orders.GET("/my-orders", d.OrderHandler.MyOrders)
	orders.GET("/all", d.OrderHandler.AllOrders)
	orders.GET("/detail/:id", d.OrderHandler.OrderDetail)
	orders.POST("/update-status/:id", d.OrderHandler.UpdateStatus)
}
