package router

import (
	"github.com/Rhoda-NM/OneStopShop-Project/domain"
	"github.com/Rhoda-NM/OneStopShop-Project/internal/middleware"
	"github.com/Rhoda-NM/OneStopShop-Project/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.GET("/email-verification/:code", handler.VerifyEmail)
	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)
	users.POST("/refresh", handler.RefreshToken)

	users.POST("/logout", handler.Logout, authRequired)
	users.GET("/me", handler.GetProfile, authRequired)
	users.GET("/:id", handler.GetUserByID, authRequired, middleware.SelfOrAdmin())
	users.PUT("/:id", handler.UpdateUser, authRequired, middleware.SelfOrAdmin())
	users.DELETE("/:id", handler.DeleteUser, authRequired, middleware.SelfOrAdmin())
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired echo.MiddlewareFunc) {
	sellerOrAdmin := middleware.RequireRoles(domain.RoleSeller, domain.RoleAdmin)

	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID)
	products.GET("/mine", handler.GetSellerProducts, authRequired, sellerOrAdmin)
	products.POST("", handler.CreateProduct, authRequired, sellerOrAdmin)
	products.PUT("/:id", handler.UpdateProduct, authRequired, sellerOrAdmin)
	products.DELETE("/:id", handler.DeleteProduct, authRequired, sellerOrAdmin)
}

func SetupCategoryRoutes(api *echo.Group, handler *rest.CategoryHandler, authRequired echo.MiddlewareFunc) {
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	categories := api.Group("/categories")

	categories.GET("", handler.GetAllCategories)
	categories.GET("/:id", handler.GetCategoryByID)
	categories.POST("", handler.CreateCategory, authRequired, adminOnly)
	categories.PUT("/:id", handler.UpdateCategory, authRequired, adminOnly)
	categories.DELETE("/:id", handler.DeleteCategory, authRequired, adminOnly)
}

func SetupOrdersRoutes(api *echo.Group, handler *rest.OrdersHandler, authRequired echo.MiddlewareFunc) {
	cart := api.Group("/cart", authRequired)
	cart.GET("", handler.GetCart)
	cart.POST("", handler.AddToCart)
	cart.DELETE("/:product_id", handler.RemoveFromCart)
	cart.POST("/checkout", handler.Checkout)

	orders := api.Group("/orders", authRequired)
	orders.GET("", handler.GetUserOrders)
	orders.GET("/:id", handler.GetOrder)
	orders.POST("/:id/complete", handler.CompleteOrder)
}

func SetupBillingRoutes(api *echo.Group, handler *rest.BillingHandler, authRequired echo.MiddlewareFunc) {
	billing := api.Group("/billing", authRequired)
	billing.GET("", handler.GetBillingDetails)
	billing.POST("", handler.SaveBillingDetails)
	billing.DELETE("", handler.DeleteBillingDetails)
}

func SetupWishlistRoutes(api *echo.Group, handler *rest.WishlistHandler, authRequired echo.MiddlewareFunc) {
	wishlist := api.Group("/wishlist", authRequired)
	wishlist.GET("", handler.GetWishlist)
	wishlist.POST("/:product_id", handler.AddToWishlist)
	wishlist.DELETE("/:product_id", handler.RemoveFromWishlist)
}

func SetupRatingRoutes(api *echo.Group, handler *rest.RatingHandler, authRequired echo.MiddlewareFunc) {
	api.GET("/ratings", handler.GetAllRatings)
	api.GET("/products/:product_id/ratings", handler.GetProductRatings)
	api.POST("/products/:product_id/ratings", handler.CreateRating, authRequired)
	api.PUT("/ratings/:id", handler.UpdateRating, authRequired)
	api.DELETE("/ratings/:id", handler.DeleteRating, authRequired)
}

func SetupDiscountRoutes(api *echo.Group, handler *rest.DiscountHandler, authRequired echo.MiddlewareFunc) {
	sellerOrAdmin := middleware.RequireRoles(domain.RoleSeller, domain.RoleAdmin)

	api.GET("/products/:product_id/discounts", handler.GetProductDiscounts)

	discounts := api.Group("/discounts", authRequired, sellerOrAdmin)
	discounts.GET("", handler.GetAllDiscounts)
	discounts.POST("", handler.CreateDiscount)
	discounts.PUT("/:id", handler.UpdateDiscount)
	discounts.DELETE("/:id", handler.DeleteDiscount)
}

func SetupSearchRoutes(api *echo.Group, handler *rest.SearchHandler, optionalAuth echo.MiddlewareFunc) {
	api.GET("/search", handler.Search, optionalAuth)
	api.GET("/search/details", handler.FuzzySearch)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler, authRequired echo.MiddlewareFunc) {
	reco := api.Group("/recommendations", authRequired)
	reco.GET("", handler.GetRecommendations)
}

func SetupInteractionRoutes(api *echo.Group, handler *rest.InteractionHandler, authRequired echo.MiddlewareFunc) {
	interactions := api.Group("/interactions", authRequired)
	interactions.POST("/view", handler.RecordView)
	interactions.POST("/engagement", handler.RecordEngagement)
	interactions.GET("/views", handler.GetViewingHistory)
}

func SetupPaymentsRoutes(api *echo.Group, handler *rest.PaymentsHandler, authRequired echo.MiddlewareFunc) {
	payments := api.Group("/payments")
	payments.POST("/stkpush", handler.STKPush, authRequired)
	payments.POST("/mpesa/callback", handler.MpesaCallback)
}

func SetupContactRoutes(api *echo.Group, handler *rest.ContactHandler) {
	api.POST("/contact", handler.SendMessage)
}
