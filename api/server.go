package api

import (
	"context"
	"crypto/rsa"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/qanoon-assist/qanoon-api/logmodule"
	"github.com/qanoon-assist/qanoon-api/schema"
	"github.com/qanoon-assist/qanoon-api/store"
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
	store store.QanoonCore

	// JWT private key
	jwtPrivateKey *rsa.PrivateKey
}

// NewServer new instance of server
func NewServer(ormDB *gorm.DB, jwtKey *rsa.PrivateKey) *Server {
	return &Server{
		store:         store.NewQanoonStore(ormDB),
		jwtPrivateKey: jwtKey,
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

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	authRoute := apiRoute.Group("/auth")
	{
		authRoute.POST("/login", s.login)
		authRoute.POST("/refresh", s.refreshToken)
		authRoute.POST("/register/citizen", s.registerCitizen)
		authRoute.POST("/register/lawyer", s.registerLawyer)
		authRoute.GET("/me", s.authMiddleware(), s.recognizeUserMiddleware(), s.currentUser)
	}

	// Public reads: the verified-lawyer directory and the knowledge base.
	apiRoute.GET("/lawyers", s.listLawyers)
	apiRoute.GET("/lawyers/stats", s.lawyerStats)
	apiRoute.GET("/specialties", s.listSpecialties)

	kbRoute := apiRoute.Group("/knowledge-base")
	{
		kbRoute.GET("/categories", s.listCategories)
		kbRoute.GET("/articles", s.listArticles)
		kbRoute.GET("/articles/search", s.searchArticles)
	}

	// Everything below requires an authenticated, registered user.
	apiRoute.Use(s.authMiddleware())
	apiRoute.Use(s.recognizeUserMiddleware())

	requestRoute := apiRoute.Group("/case-requests")
	{
		requestRoute.GET("", s.listCaseRequests)
		requestRoute.POST("", s.createCaseRequest)
		requestRoute.GET("/stats", s.caseRequestStats)
		requestRoute.POST("/:requestID/accept", s.acceptCaseRequest)
		requestRoute.POST("/:requestID/reject", s.rejectCaseRequest)
		requestRoute.POST("/:requestID/start-progress", s.startCaseProgress)
		requestRoute.POST("/:requestID/complete", s.completeCaseRequest)
		requestRoute.POST("/:requestID/mark-viewed", s.markCaseRequestViewed)
	}

	caseRoute := apiRoute.Group("/cases")
	{
		caseRoute.GET("", s.listCases)
		caseRoute.GET("/:caseID", s.getCase)
	}

	hearingRoute := apiRoute.Group("/hearings")
	{
		hearingRoute.GET("", s.listHearings)
		hearingRoute.POST("", s.createHearing)
	}

	updateRoute := apiRoute.Group("/case-updates")
	{
		updateRoute.GET("", s.listCaseUpdates)
		updateRoute.POST("", s.createCaseUpdate)
	}

	messageRoute := apiRoute.Group("/messages")
	{
		messageRoute.GET("", s.listMessages)
		messageRoute.POST("", s.createMessage)
		messageRoute.GET("/by-case", s.listThread)
		messageRoute.GET("/unread-count", s.unreadCount)
		messageRoute.GET("/stats", s.messageStats)
	}

	lawyerRoute := apiRoute.Group("/lawyers")
	{
		lawyerRoute.POST("/:lawyerID/verify", s.requireAdmin(), s.verifyLawyer)
		lawyerRoute.POST("/:lawyerID/reject", s.requireAdmin(), s.rejectLawyer)
	}

	adminRoute := apiRoute.Group("/admin/dashboard")
	adminRoute.Use(s.requireAdmin())
	{
		adminRoute.GET("", s.adminDashboard)
		adminRoute.GET("/pending-lawyers", s.pendingLawyers)
		adminRoute.GET("/recent-activity", s.recentActivity)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterrupt sends error message and determine if it should interrupt the current flow
func shouldInterrupt(err error, c *gin.Context) bool {
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
	if shouldInterrupt(err, c) {
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

// abortWithStoreError translates typed store errors into HTTP responses.
// This is the only place business-rule failures become status codes.
func abortWithStoreError(c *gin.Context, err error) {
	switch err {
	case store.ErrDuplicateCaseRequest:
		abortWithEncoding(c, http.StatusBadRequest, errorDuplicateRequest, err)
	case store.ErrCaseRequestNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound, err)
	case store.ErrNotAssignedLawyer:
		abortWithEncoding(c, http.StatusForbidden, errorNotAssignedLawyer, err)
	case store.ErrNotRequestingCitizen:
		abortWithEncoding(c, http.StatusForbidden, errorNotRequestingCitizen, err)
	case store.ErrRequestFinalized:
		abortWithEncoding(c, http.StatusBadRequest, errorRequestFinalized, err)
	case store.ErrStatsRoleUnsupported:
		abortWithEncoding(c, http.StatusForbidden, errorStatsUnsupported, err)
	case store.ErrCaseNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorCaseNotFound, err)
	case store.ErrNotCaseLawyer:
		abortWithEncoding(c, http.StatusForbidden, errorNotCaseLawyer, err)
	case store.ErrThreadAccessDenied:
		abortWithEncoding(c, http.StatusForbidden, errorThreadAccessDenied, err)
	case store.ErrLawyerNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorLawyerNotFound, err)
	case store.ErrUserNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorUserNotFound, err)
	case store.ErrUserTaken:
		abortWithEncoding(c, http.StatusBadRequest, errorUserTaken, err)
	default:
		log.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}

// viewerFromContext returns the viewer attached by recognizeUserMiddleware.
func viewerFromContext(c *gin.Context) (*schema.User, bool) {
	u := c.MustGet("user")
	user, ok := u.(*schema.User)
	return user, ok
}
