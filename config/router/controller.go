package router

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
)

func normalizePath(controller *RESTController, relativePath string) string {
	var path string = controller.mountPoint

	if relativePath != "" {
		path = path + "/" + relativePath
	}

	if path[0] != '/' {
		path = "/" + path
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	return strings.ReplaceAll(path, "//", "/")
}

func (routerService *RouterService) keyForPathAndMethod(path, method string) string {
	return fmt.Sprintf("%s-%s", method, path)
}

func (controller *RESTController) bindHandlerToController(routerService *RouterService, path, method string) {
	key := routerService.keyForPathAndMethod(path, method)
	otherController, foundPrevious := routerService.handlerToControllerMap[key]

	if foundPrevious {
		panic(fmt.Sprintf("A handler is already registered for path '%s' by a different controller '%s'", path, otherController.name))
	}

	routerService.handlerToControllerMap[key] = controller
}

func createHandler(handler HandlerFunction) MiddlewareFunc {
	return func(c *RequestContext) {
		result := handler(c)

		if result == nil {
			c.JSON(http.StatusInternalServerError, InternalServerErrorResult("A handler returned an undefined result. This typically indicates a bug in a handler's implementation.").ToJSON())
			return
		}

		c.JSON(result.StatusCode, result.ToJSON())
	}
}

// createPageHandler renders into a buffer first so a failed render never
// leaves a half-written document with a 200 status.
func createPageHandler(handler PageFunction) MiddlewareFunc {
	return func(c *RequestContext) {
		result := handler(c)

		if result == nil || result.Page == nil {
			c.Data(http.StatusInternalServerError, "text/plain; charset=utf-8", []byte("Internal Server Error"))
			return
		}

		var buf bytes.Buffer
		if err := result.Page.Render(&buf); err != nil {
			GetLogger(c).Error("Failed to render page", "error", err)
			c.Data(http.StatusInternalServerError, "text/plain; charset=utf-8", []byte("Internal Server Error"))
			return
		}

		status := result.StatusCode
		if status == 0 {
			status = http.StatusOK
		}

		c.Header("Cache-Control", "no-store")
		c.Data(status, "text/html; charset=utf-8", buf.Bytes())
	}
}

func NewRESTController(name, mountPoint string, prepare func(*RouterService, *RESTController)) *RESTController {
	mountPoint = strings.ReplaceAll("/"+mountPoint, "//", "/")

	return &RESTController{
		name:       name,
		mountPoint: mountPoint,
		version:    "",
		prepare:    prepare,
	}
}

func NewVersionedRESTController(name, version, mountPoint string, prepare func(*RouterService, *RESTController)) *RESTController {
	// Prefixing the version to the mount point at controller creation clarifies routing and leaves no room for ambiguity.
	finalPath := strings.ReplaceAll("/"+version+"/"+mountPoint, "//", "/")

	return &RESTController{
		name:       name,
		mountPoint: finalPath,
		version:    version,
		prepare:    prepare,
	}
}

func (routerService *RouterService) register(controller *RESTController, method, path string, handlers ...MiddlewareFunc) {
	controller.handlerCount++
	mountPoint := normalizePath(controller, path)
	controller.bindHandlerToController(routerService, mountPoint, method)
	routerService.engine.Handle(method, mountPoint, handlers...)
	routerService.logger.Debug("Handler registered", "method", method, "path", mountPoint)
}

func (routerService *RouterService) AddPostHandler(
	controller *RESTController,
	path string,
	handler HandlerFunction,
	middlewares ...MiddlewareFunc,
) {
	routerService.register(controller, http.MethodPost, path, append(middlewares, createHandler(handler))...)
}

func (routerService *RouterService) AddGetHandler(
	controller *RESTController,
	path string,
	handler HandlerFunction,
	middlewares ...MiddlewareFunc,
) {
	routerService.register(controller, http.MethodGet, path, append(middlewares, createHandler(handler))...)
}

func (routerService *RouterService) AddGetPageHandler(
	controller *RESTController,
	path string,
	handler PageFunction,
	middlewares ...MiddlewareFunc,
) {
	routerService.register(controller, http.MethodGet, path, append(middlewares, createPageHandler(handler))...)
}

func (routerService *RouterService) AddPostPageHandler(
	controller *RESTController,
	path string,
	handler PageFunction,
	middlewares ...MiddlewareFunc,
) {
	routerService.register(controller, http.MethodPost, path, append(middlewares, createPageHandler(handler))...)
}
