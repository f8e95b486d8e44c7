package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	headerActionVersion = "X-Action-Version"
	headerBlockchainIDs = "X-Blockchain-Ids"

	actionVersion = "2.4"
)

// requestLogger - logs every request with slog once it is handled.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"status", status,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"ip", c.ClientIP(),
			"latency", time.Since(start),
		}

		if errorMessage := c.Errors.ByType(gin.ErrorTypePrivate).String(); errorMessage != "" {
			attrs = append(attrs, "error", errorMessage)
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("request handled", attrs...)
		case status >= http.StatusBadRequest:
			logger.Warn("request handled", attrs...)
		default:
			logger.Info("request handled", attrs...)
		}
	}
}

// actionsCORS - wallets and action clients call from any origin.
func actionsCORS() gin.HandlerFunc {
	conf := cors.DefaultConfig()
	conf.AllowAllOrigins = true
	conf.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}
	conf.AllowHeaders = []string{
		"Content-Type",
		"Authorization",
		"Content-Encoding",
		"Accept-Encoding",
		headerActionVersion,
		headerBlockchainIDs,
	}
	conf.ExposeHeaders = []string{headerActionVersion, headerBlockchainIDs}

	return cors.New(conf)
}

func actionHeaders(blockchainID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header(headerActionVersion, actionVersion)
		c.Header(headerBlockchainIDs, blockchainID)
		c.Next()
	}
}
