package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/The127/ioc"
	"github.com/tokengate-project/tokengate/internal/bearer"
	"github.com/tokengate-project/tokengate/internal/config"
	"github.com/tokengate-project/tokengate/internal/handlers/apihandlers"
	"github.com/tokengate-project/tokengate/internal/logging"
	"github.com/tokengate-project/tokengate/internal/middlewares"
	"github.com/tokengate-project/tokengate/internal/middlewares/authentication"

	gh "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

func Serve(root *ioc.DependencyProvider, serverConfig config.ServerConfig, bearerConfig config.BearerConfig) {
	r := mux.NewRouter()

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.Logger.Infof("Not found API Request: %s %s", r.Method, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"errors": []map[string]string{
				{"code": "NOT_FOUND", "message": "route not found"},
			},
		})
	})

	r.Use(middlewares.RecoverMiddleware())
	r.Use(middlewares.LoggingMiddleware())
	r.Use(middlewares.ScopeMiddleware(root))

	r.Use(gh.CORS(
		gh.AllowedOrigins(serverConfig.AllowedOrigins),
		gh.AllowedMethods([]string{"GET", "POST"}),
		gh.AllowedHeaders([]string{bearerConfig.HeaderName, "Content-Type"}),
		gh.AllowCredentials(),
		gh.MaxAge(3600),
	))

	mapApi(r, bearerConfig)

	addr := fmt.Sprintf("%s:%d", serverConfig.Host, serverConfig.Port)
	logging.Logger.Infof("Starting server on %s", addr)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go serve(srv)
}

func serve(srv *http.Server) {
	err := srv.ListenAndServe()
	if err != nil {
		panic(fmt.Errorf("error while running server: %w", err))
	}
}

func mapApi(r *mux.Router, bearerConfig config.BearerConfig) {
	apiRouter := r.PathPrefix("/api/v1").Subrouter()
	apiRouter.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// unauthenticated endpoints need to go above the authentication middleware
	authApiRouter := apiRouter.PathPrefix("").Subrouter()
	authApiRouter.Use(authentication.ApiAuthenticationMiddleware(newConverter(bearerConfig)))

	authApiRouter.HandleFunc("/me", apihandlers.GetMe).Methods(http.MethodGet, http.MethodOptions)
	authApiRouter.HandleFunc("/revocations", apihandlers.RevokeToken).Methods(http.MethodPost, http.MethodOptions)
}

func newConverter(c config.BearerConfig) *authentication.Converter {
	resolver := bearer.NewResolver()
	resolver.SetHeaderName(c.HeaderName)
	resolver.SetAllowUriQueryParameter(c.AllowUriQueryParameter)
	resolver.SetAllowFormEncodedBodyParameter(c.AllowFormEncodedBodyParameter)

	return authentication.NewConverter(resolver)
}
