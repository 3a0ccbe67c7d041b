package api

import (
	"fmt"
	"log"
	"net/http"

	_ "github.com/rohits-web03/postdev/docs"
	httpSwagger "github.com/swaggo/http-swagger"
	"gorm.io/gorm"

	"github.com/rohits-web03/postdev/internal/api/handlers"
	"github.com/rohits-web03/postdev/internal/api/middleware"
	"github.com/rohits-web03/postdev/internal/api/services"
	"github.com/rohits-web03/postdev/internal/config"
	"github.com/rohits-web03/postdev/internal/repositories"
	"github.com/rs/cors"
)

// SetupRouter wires stores, services and views over db. archiver may be nil.
func SetupRouter(cfg config.Config, db *gorm.DB, archiver services.Archiver, opts ...services.PostServiceOption) http.Handler {
	users := repositories.NewUserRepository(db)
	posts := repositories.NewPostRepository(db)

	if archiver != nil {
		opts = append([]services.PostServiceOption{services.WithArchiver(archiver)}, opts...)
	}
	identity := services.NewIdentityResolver(cfg.JWTSecret, users)
	h := handlers.NewHandler(identity, services.NewPostService(posts, cfg.PostTTL, opts...))

	mainMux := http.NewServeMux()
	c := cors.New(cfg.CorsConfig)

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	if !cfg.IsProduction() {
		mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)
	}

	// ---------- PROTECTED ROUTES ----------
	protectedMux := http.NewServeMux()

	protectedMux.HandleFunc("GET /{$}", h.Home)
	protectedMux.HandleFunc("POST /{$}", h.SetUsername)
	protectedMux.HandleFunc("PUT /{$}", h.SetUsername)

	protectedMux.HandleFunc("GET "+handlers.PathAddPost, h.AddPostForm)
	protectedMux.HandleFunc("POST "+handlers.PathAddPost, h.CreatePost)
	protectedMux.HandleFunc("GET "+handlers.PathMyPosts, h.MyPosts)

	protectedMux.HandleFunc("GET /posts/{id}", h.PostDetail)
	protectedMux.HandleFunc("PUT /posts/{id}", h.MakePrivate)
	protectedMux.HandleFunc("PATCH /posts/{id}", h.RenewPost)
	protectedMux.HandleFunc("DELETE /posts/{id}", h.DeletePost)

	protectedMux.HandleFunc("GET "+handlers.PathSearch, h.SearchForm)
	protectedMux.HandleFunc("POST "+handlers.PathSearch, h.Search)

	mainMux.Handle("/", middleware.AuthMiddleware(identity)(protectedMux))

	log.Println("Router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Logger(handler)
	handler = middleware.RequestID(handler)
	return handler
}
