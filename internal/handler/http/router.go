package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
	"github.com/mikiasgoitom/Remarks/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/Remarks/internal/usecase/contract"
)

// RouterOptions carries the transport settings of the router.
type RouterOptions struct {
	AllowOrigins       []string
	RateLimitPerSecond float64
}

type Router struct {
	userHandler   *UserHandler
	postHandler   *PostHandler
	remarkHandler *RemarkHandler
	userUsecase   usecasecontract.IUserUseCase
	opts          RouterOptions
}

func NewRouter(userUsecase usecasecontract.IUserUseCase, postUsecase usecasecontract.IPostUseCase, remarkUsecase usecasecontract.IRemarkUseCase, opts RouterOptions) *Router {
	userHandler := NewUserHandler(userUsecase, remarkUsecase)
	postHandler := NewPostHandler(postUsecase, remarkUsecase)
	remarkHandler := NewRemarkHandler(remarkUsecase)
	remarkHandler.RegisterSubject(entity.PostRefType, postHandler.LoadSubject)
	remarkHandler.RegisterSubject(entity.UserRefType, userHandler.LoadSubject)
	return &Router{
		userHandler:   userHandler,
		postHandler:   postHandler,
		remarkHandler: remarkHandler,
		userUsecase:   userUsecase,
		opts:          opts,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	origins := r.opts.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: !containsWildcard(origins),
		MaxAge:           12 * time.Hour,
	}))
	if r.opts.RateLimitPerSecond > 0 {
		router.Use(middleware.RateLimiter(middleware.NewLimiter(r.opts.RateLimitPerSecond)))
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	// API v1 routes
	v1 := router.Group("/api/v1")

	requireAuth := middleware.AuthMiddleWare(r.userUsecase)
	optionalAuth := middleware.OptionalAuthMiddleWare(r.userUsecase)

	auth := v1.Group("/auth")
	{
		auth.POST("/register", r.userHandler.CreateUser)
		auth.POST("/login", r.userHandler.Login)
		auth.POST("/logout", requireAuth, r.userHandler.Logout)
	}

	// Public reads; an authenticated caller additionally sees their own remarks
	public := v1.Group("/")
	public.Use(optionalAuth)
	{
		public.GET("/users", r.userHandler.ListUsers)
		public.GET("/users/:id", r.userHandler.GetUser)
		public.GET("/posts", r.postHandler.ListPosts)
		public.GET("/posts/:postID", r.postHandler.GetPost)
		public.GET("/remarks/:subjectType/:subjectID", r.remarkHandler.GetRemarks)
	}

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(requireAuth)
	{
		protected.GET("/me", r.userHandler.GetCurrentUser)
		protected.DELETE("/me", r.userHandler.DeleteCurrentUser)
		protected.DELETE("/users/:id", r.userHandler.DeleteUser)

		protected.POST("/posts", r.postHandler.CreatePost)
		protected.DELETE("/posts/:postID", r.postHandler.DeletePost)

		protected.DELETE("/remarks/mine", r.remarkHandler.ClearMine)
		protected.PUT("/remarks/:subjectType/:subjectID/:kind", r.remarkHandler.AddRemark)
		protected.DELETE("/remarks/:subjectType/:subjectID/:kind", r.remarkHandler.RemoveRemark)
		protected.POST("/remarks/:subjectType/:subjectID/:kind/toggle", r.remarkHandler.ToggleRemark)
	}
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
