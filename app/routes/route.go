package routes

import (
	"net/http"
	"os"
	"time"

	"github.com/Rakhulsr/go-marketplace/app/auth"
	"github.com/Rakhulsr/go-marketplace/app/cache"
	"github.com/Rakhulsr/go-marketplace/app/configs"
	"github.com/Rakhulsr/go-marketplace/app/handlers"
	"github.com/Rakhulsr/go-marketplace/app/handlers/admin"
	"github.com/Rakhulsr/go-marketplace/app/helpers"
	"github.com/Rakhulsr/go-marketplace/app/messaging"
	"github.com/Rakhulsr/go-marketplace/app/middlewares"
	"github.com/Rakhulsr/go-marketplace/app/repositories"
	"github.com/Rakhulsr/go-marketplace/app/services"
	"github.com/Rakhulsr/go-marketplace/app/utils/format"
	"github.com/Rakhulsr/go-marketplace/app/utils/renderer"
	"github.com/Rakhulsr/go-marketplace/app/utils/storage"
	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Infra carries the process-wide clients built by the serve command.
type Infra struct {
	Env       configs.ENV
	Cache     cache.CatalogCache
	Publisher messaging.Publisher
	Midtrans  *configs.MidtransClients
}

func NewRouter(db *gorm.DB, infra Infra) (*mux.Router, error) {
	env := infra.Env
	if infra.Cache == nil {
		infra.Cache = cache.NewNoopCatalogCache()
	}
	if infra.Publisher == nil {
		infra.Publisher = messaging.NewNoopPublisher()
	}

	codec, err := auth.NewTokenCodec(env.JWTSecret, env.JWTIssuer, env.JWTAudience, time.Duration(env.JWTExpiresMinutes)*time.Minute)
	if err != nil {
		return nil, err
	}

	rnd := renderer.New()
	money := format.NewMoney(env.CurrencySymbol)

	userRepo := repositories.NewUserRepository(db)
	sellerRepo := repositories.NewSellerProfileRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	brandRepo := repositories.NewBrandRepository(db)
	productRepo := repositories.NewProductRepository(db)
	cartItemRepo := repositories.NewCartItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	resolver := auth.NewResolver(userRepo, sellerRepo)

	gateway := services.PaymentGateway{FinishURL: env.AppURL + "/orders"}
	if infra.Midtrans != nil {
		gateway.Snap = infra.Midtrans.Snap
		gateway.Status = infra.Midtrans.Core
		gateway.ServerKey = env.MIDTRANS_SERVER_KEY
	}

	authSvc := services.NewAuthService(userRepo, sellerRepo, codec)
	sellerSvc := services.NewSellerService(db, sellerRepo, userRepo, infra.Publisher, infra.Cache)
	categorySvc := services.NewCategoryService(categoryRepo, infra.Cache)
	brandSvc := services.NewBrandService(brandRepo, infra.Cache)
	productSvc := services.NewProductService(productRepo, categoryRepo, brandRepo, sellerRepo, storage.NewLocalImageStore(env.UploadDir))
	cartSvc := services.NewCartService(cartItemRepo, productRepo)
	checkoutSvc := services.NewCheckoutService(db, cartItemRepo, productRepo, orderRepo, infra.Publisher)
	orderSvc := services.NewOrderService(db, orderRepo, productRepo, userRepo, gateway)

	authHandler := handlers.NewAuthHandler(rnd, authSvc, sellerSvc)
	catalogHandler := handlers.NewCatalogHandler(rnd, categorySvc, brandSvc, sellerSvc)
	productHandler := handlers.NewProductHandler(rnd, productSvc, resolver, money)
	cartHandler := handlers.NewCartHandler(rnd, cartSvc, checkoutSvc, money)
	orderHandler := handlers.NewOrderHandler(rnd, orderSvc, money)
	adminHandler := admin.NewAdminHandler(rnd, categorySvc, brandSvc, sellerSvc)

	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		helpers.JSONError(rnd, w, http.StatusNotFound, "Route not found.", nil)
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		helpers.JSONError(rnd, w, http.StatusMethodNotAllowed, "Method not allowed.", nil)
	})

	router.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(env.UploadDir)))).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middlewares.VerifyBearerToken(codec), middlewares.ResolveIdentity(resolver))

	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/products", productHandler.ListProducts).Methods("GET")
	api.HandleFunc("/products/{id:[0-9]+}", productHandler.GetProduct).Methods("GET")
	api.HandleFunc("/categories", catalogHandler.Categories).Methods("GET")
	api.HandleFunc("/brands", catalogHandler.Brands).Methods("GET")
	api.HandleFunc("/sellers", catalogHandler.Sellers).Methods("GET")
	api.HandleFunc("/payments/notification", orderHandler.PaymentNotification).Methods("POST")

	authed := api.NewRoute().Subrouter()
	authed.Use(middlewares.RequireAuthenticated(rnd))

	authed.HandleFunc("/products/my", productHandler.MyProducts).Methods("GET")
	authed.HandleFunc("/products", productHandler.CreateProduct).Methods("POST")
	authed.HandleFunc("/products/{id:[0-9]+}", productHandler.UpdateProduct).Methods("PUT")
	authed.HandleFunc("/products/{id:[0-9]+}", productHandler.DeleteProduct).Methods("DELETE")

	authed.HandleFunc("/cart/add", cartHandler.AddToCart).Methods("POST")
	authed.HandleFunc("/cart/remove", cartHandler.RemoveFromCart).Methods("POST")
	authed.HandleFunc("/cart/my-cart", cartHandler.GetCart).Methods("GET")
	authed.HandleFunc("/cart/checkout", cartHandler.Checkout).Methods("POST")

	authed.HandleFunc("/orders/my", orderHandler.MyOrders).Methods("GET")
	authed.HandleFunc("/orders/{id:[0-9]+}", orderHandler.GetOrder).Methods("GET")
	authed.HandleFunc("/orders/{id:[0-9]+}/pay", orderHandler.PayOrder).Methods("POST")

	authed.HandleFunc("/profile/me", authHandler.Profile).Methods("GET")
	authed.HandleFunc("/profile/become-seller", authHandler.BecomeSeller).Methods("POST")

	adminRoutes := api.NewRoute().Subrouter()
	adminRoutes.Use(middlewares.RequireRole(rnd, auth.RoleAdmin))

	adminRoutes.HandleFunc("/admin-category", adminHandler.ListCategories).Methods("GET")
	adminRoutes.HandleFunc("/admin-category", adminHandler.CreateCategory).Methods("POST")
	adminRoutes.HandleFunc("/admin-category/{id:[0-9]+}", adminHandler.GetCategory).Methods("GET")
	adminRoutes.HandleFunc("/admin-category/{id:[0-9]+}", adminHandler.UpdateCategory).Methods("PUT")
	adminRoutes.HandleFunc("/admin-category/{id:[0-9]+}", adminHandler.DeleteCategory).Methods("DELETE")

	adminRoutes.HandleFunc("/admin-brand", adminHandler.ListBrands).Methods("GET")
	adminRoutes.HandleFunc("/admin-brand", adminHandler.CreateBrand).Methods("POST")
	adminRoutes.HandleFunc("/admin-brand/{id:[0-9]+}", adminHandler.UpdateBrand).Methods("PUT")
	adminRoutes.HandleFunc("/admin-brand/{id:[0-9]+}", adminHandler.DeleteBrand).Methods("DELETE")

	adminRoutes.HandleFunc("/admin/pending-sellers", adminHandler.PendingSellers).Methods("GET")
	adminRoutes.HandleFunc("/admin/approve-seller/{id:[0-9]+}", adminHandler.ApproveSeller).Methods("POST")
	adminRoutes.HandleFunc("/admin/reject-seller/{id:[0-9]+}", adminHandler.RejectSeller).Methods("POST")

	return router, nil
}

// WithServerMiddleware adds CORS, access logging and panic recovery around the router.
func WithServerMiddleware(router http.Handler, env configs.ENV) http.Handler {
	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins(env.CORSAllowedOrigins),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
		gorillaHandlers.AllowCredentials(),
	)
	recovery := gorillaHandlers.RecoveryHandler(gorillaHandlers.PrintRecoveryStack(env.AppEnv != "production"))
	return recovery(gorillaHandlers.LoggingHandler(os.Stdout, cors(router)))
}
