package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/shorts-insights-api/pkg/apiErrors"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Lista de middlewares específicos para esta rota
}

type Router struct {
	router *httprouter.Router
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) Router {
	router := &Router{
		router: httprouter.New(),
	}

	router.router.NotFound = http.HandlerFunc(notFound)
	router.router.MethodNotAllowed = http.HandlerFunc(methodNotAllowed)

	for _, config := range configs {
		config(router)
	}

	return *router
}

func (r Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes adiciona rotas ao router com seus middlewares específicos
func (r Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		var handler http.Handler = route.Handler

		// Aplicar middlewares específicos da rota, do último para o primeiro
		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			middleware := route.Middlewares[i]
			handler = middleware(handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, fmt.Sprintf("Route not found: %s", r.URL.Path), nil)
}

// methodNotAllowed usa o header Allow preenchido pelo httprouter, sem o OPTIONS.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	var allowed []string
	for _, method := range strings.Split(w.Header().Get("Allow"), ",") {
		method = strings.TrimSpace(method)
		if method != "" && method != http.MethodOptions {
			allowed = append(allowed, method)
		}
	}

	if len(allowed) == 0 {
		allowed = []string{http.MethodGet}
	}

	message := fmt.Sprintf("Method not allowed. Use %s.", strings.Join(allowed, " or "))
	apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, message, nil)
}
