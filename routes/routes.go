package routes

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/dcode-github/listing_storefront/cache"
	"github.com/dcode-github/listing_storefront/catalog"
	"github.com/dcode-github/listing_storefront/controllers"
	"github.com/dcode-github/listing_storefront/middleware"
	"github.com/dcode-github/listing_storefront/repository"
	"github.com/dcode-github/listing_storefront/utils"
	"github.com/dcode-github/listing_storefront/views"
)

// Deps are the services the handlers are built from.
type Deps struct {
	AppName  string
	Catalog  catalog.Source
	Cache    cache.Store
	CacheTTL time.Duration
	Users    repository.UserRepository
	Tokens   *utils.JWTManager
	Views    *views.Renderer
}

func Routes(router *mux.Router, d Deps) {
	optionalAuth := middleware.OptionalAuth(d.Tokens)
	router.Use(optionalAuth)
	router.NotFoundHandler = optionalAuth(controllers.NotFound(d.Views, d.AppName))

	router.PathPrefix("/assets/").Handler(http.StripPrefix("/assets/", views.Assets())).Methods(http.MethodGet)
	router.HandleFunc("/healthz", controllers.Health()).Methods(http.MethodGet)

	// Pages
	router.HandleFunc("/", controllers.Home(d.Catalog, d.Views, d.AppName)).Methods(http.MethodGet)
	router.HandleFunc("/search", controllers.Search(d.Catalog, d.Views, d.AppName)).Methods(http.MethodGet)
	router.HandleFunc("/properties/{name}", controllers.PropertyDetail(d.Catalog, d.Views, d.AppName)).Methods(http.MethodGet)
	router.HandleFunc("/signin", controllers.SignInPage(d.Views, d.AppName)).Methods(http.MethodGet)
	router.HandleFunc("/signup", controllers.SignUpPage(d.Views, d.AppName)).Methods(http.MethodGet)

	// Auth routes
	router.HandleFunc("/register", controllers.RegisterUser(d.Users)).Methods(http.MethodPost)
	router.HandleFunc("/login", controllers.LoginUser(d.Users, d.Tokens)).Methods(http.MethodPost)
	router.HandleFunc("/logout", controllers.LogoutUser()).Methods(http.MethodPost)

	// JSON API
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/properties", controllers.GetAllProperties(d.Catalog, d.Cache, d.CacheTTL)).Methods(http.MethodGet)
	api.HandleFunc("/properties/{name}", controllers.GetProperty(d.Catalog)).Methods(http.MethodGet)
	api.HandleFunc("/properties/{name}/quote", controllers.GetQuote(d.Catalog)).Methods(http.MethodGet)
	api.HandleFunc("/filters", controllers.GetFilters()).Methods(http.MethodGet)

	// Routes that require authentication
	requireAuth := middleware.RequireAuth(d.Tokens)
	api.Handle("/me", requireAuth(controllers.Me(d.Users))).Methods(http.MethodGet)
}
