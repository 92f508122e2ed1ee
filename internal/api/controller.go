package api

import "github.com/gin-gonic/gin"

// Controller registers a group of routes on the versioned API group.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
}
