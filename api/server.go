package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roadcare/pothole-api/geo"
	"github.com/roadcare/pothole-api/logmodule"
	"github.com/roadcare/pothole-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.RoadcareCore
	mongoStore store.MongoStore
}

// NewServer new instance of server
func NewServer(ormDB *gorm.DB, mongoClient *mongo.Client, resolver geo.LocationResolver) *Server {
	return &Server{
		store:      store.NewRoadcareStore(ormDB),
		mongoStore: store.NewMongoStore(mongoClient, viper.GetString("mongo.database"), resolver),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowAllOrigins:  true,
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	potholeRoute := r.Group("/potholes")
	potholeRoute.Use(logmodule.Ginrus("Pothole"))
	{
		potholeRoute.POST("", s.createPothole)
		potholeRoute.GET("", s.listPotholes)
		potholeRoute.POST("/within", s.listPotholesWithin)
		potholeRoute.POST("/nearby", s.listPotholesNearby)
		potholeRoute.POST("/:id/photos", s.uploadPhoto)
		potholeRoute.GET("/:id/photos/:photoID", s.getPhoto)
		potholeRoute.PUT("/:id", s.authMiddleware(), s.recognizeAdminMiddleware(), s.updatePothole)
	}

	authRoute := r.Group("/auth")
	authRoute.Use(logmodule.Ginrus("Auth"))
	{
		authRoute.POST("/login", s.adminLogin)
		authRoute.GET("/verify", s.authMiddleware(), s.recognizeAdminMiddleware(), s.verifyToken)
	}

	adminRoute := r.Group("/admin/dashboard")
	adminRoute.Use(logmodule.Ginrus("Admin"))
	adminRoute.Use(s.authMiddleware())
	adminRoute.Use(s.recognizeAdminMiddleware())
	{
		adminRoute.GET("/potholes", s.dashboardPotholes)
		adminRoute.GET("/potholes/:id", s.dashboardPotholeDetails)
		adminRoute.GET("/potholes/:id/photos", s.dashboardPotholePhotos)
		adminRoute.PATCH("/potholes/:id", s.dashboardUpdateStatus)
		adminRoute.PUT("/potholes/:id", s.dashboardUpdateStatus)
		adminRoute.DELETE("/potholes/:id", s.dashboardDeletePothole)
		adminRoute.GET("/stats", s.dashboardStats)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	c.JSON(code, obj)
	c.Abort()
}
