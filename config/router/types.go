package router

import (
	"io"

	"github.com/gin-gonic/gin"
)

type RequestContext = gin.Context

type MiddlewareFunc = gin.HandlerFunc

type ServiceResult struct {
	StatusCode int    `json:"code"`
	Data       any    `json:"data"`
	Message    string `json:"message"`
}

type HandlerFunction func(*RequestContext) *ServiceResult

// Renderer is anything that can write an HTML document, such as a gomponents node.
type Renderer interface {
	Render(w io.Writer) error
}

// PageResult is the HTML counterpart of ServiceResult.
type PageResult struct {
	StatusCode int
	Page       Renderer
}

type PageFunction func(*RequestContext) *PageResult

type RESTController struct {
	name         string
	mountPoint   string
	version      string
	handlerCount int
	prepare      func(*RouterService, *RESTController)
}

func (result *ServiceResult) ToJSON() gin.H {
	return gin.H{
		"code":    result.StatusCode,
		"data":    result.Data,
		"message": result.Message,
	}
}
