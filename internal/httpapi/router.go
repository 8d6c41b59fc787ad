package httpapi

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with CORS open to the independent
// front-end clients consuming the API.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())
	h.Register(r)
	return r
}
