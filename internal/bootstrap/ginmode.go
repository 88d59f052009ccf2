package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode switches gin to release mode outside development and test.
func SetGinMode(env string) {
	switch env {
	case "production", "staging":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}
}
