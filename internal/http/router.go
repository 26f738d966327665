package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"career-match/internal/metrics"
	"career-match/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	tokens *service.TokenService,
	assessmentH *AssessmentHandler,
	careerH *CareerHandler,
	questionH *QuestionHandler,
) *gin.Engine {
	r := gin.New()

	r.Use(zapLoggerMiddleware(logger), gin.Recovery())

	r.GET("/healthz", jsonContentTypeMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("", jsonContentTypeMiddleware())

	careers := api.Group("/careers")
	careers.GET("", careerH.ListCareers)
	careers.GET("/:id", careerH.GetCareer)

	questions := api.Group("/questions")
	questions.GET("", questionH.ListQuestions)
	questions.GET("/:id", questionH.GetQuestion)
	questions.POST("/status", questionH.CompletionStatus)

	assessments := api.Group("/assessments", JWTAuthMiddleware(tokens))
	assessments.POST("", assessmentH.CreateAssessment)
	assessments.GET("", assessmentH.ListAssessments)
	assessments.GET("/:id", assessmentH.GetAssessment)
	assessments.GET("/:id/similar", assessmentH.SimilarAssessments)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
// /metrics queda afuera porque prometheus usa su propio formato.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
