// Package i holds the interfaces shared by the api packages.
package i

import "github.com/gin-gonic/gin"

// Controller registers its routes on a versioned route group.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
}
