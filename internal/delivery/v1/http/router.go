package http

import (
	_ "github.com/DRSN-tech/storefront-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(cartUC usecase.CartUC, catalogUC usecase.CatalogUC, authUC usecase.AuthUC, sessionCfg *cfg.SessionCfg) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		prHandler := NewProductHandler(catalogUC, r.logger)
		registerProductRoutes(v1, prHandler)

		authHandler := NewAuthHandler(authUC, sessionCfg, r.logger)
		registerAuthRoutes(v1, authHandler)

		cartHandler := NewCartHandler(cartUC, r.logger)
		registerCartRoutes(v1, cartHandler, authUC, sessionCfg, r.logger)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", prHandler.listProducts)
		pr.Get("/search", prHandler.searchProducts)
		pr.Get("/categories", prHandler.listCategories)
		pr.Get("/{id}", prHandler.getProduct)
	})
}

func registerAuthRoutes(router chi.Router, authHandler *AuthHandler) {
	router.Route("/auth", func(auth chi.Router) {
		auth.Post("/register", authHandler.register)
		auth.Post("/login", authHandler.login)
		auth.Post("/logout", authHandler.logout)
	})
}

func registerCartRoutes(router chi.Router, cartHandler *CartHandler, authUC usecase.AuthUC, sessionCfg *cfg.SessionCfg, logger logger.Logger) {
	router.Route("/cart", func(cart chi.Router) {
		cart.Use(sessionAuth(authUC, sessionCfg, logger))
		cart.Get("/", cartHandler.getCart)
		cart.Post("/", cartHandler.addItem)
		cart.Delete("/", cartHandler.clearCart)
		cart.Put("/{itemID}", cartHandler.updateQuantity)
		cart.Delete("/{itemID}", cartHandler.removeItem)
	})
}
