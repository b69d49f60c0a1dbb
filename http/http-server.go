package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/ofast-team/backend/conf"
	"github.com/ofast-team/backend/judge"
	"github.com/ofast-team/backend/logger"
	"github.com/ofast-team/backend/problem"
	"github.com/ofast-team/backend/subm"
	"github.com/ofast-team/backend/user"
	"github.com/ofast-team/backend/user/auth"
)

type HttpServer struct {
	submSrvc    *subm.SubmSrvc
	problemSrvc *problem.ProblemSrvc
	userSrvc    *user.UserSrvc
	heartbeat   *judge.Heartbeat
	router      *chi.Mux
}

func NewHttpServer(
	cfg *conf.Config,
	submSrvc *subm.SubmSrvc,
	problemSrvc *problem.ProblemSrvc,
	userSrvc *user.UserSrvc,
	heartbeat *judge.Heartbeat,
) *HttpServer {
	router := chi.NewRouter()

	reqLogger := httplog.NewLogger("ofast", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		RequestHeaders:   true,
		MessageFieldName: "message",
		Tags: map[string]string{
			"env": cfg.Env,
		},
	})

	router.Use(middleware.RequestID)
	router.Use(httplog.RequestLogger(reqLogger))
	router.Use(ctxLogger)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           3000,
	}))

	router.Use(auth.GetJwtAuthMiddleware([]byte(cfg.JwtKey)))
	router.Use(newStatsLogger(5 * time.Second).middleware)

	server := &HttpServer{
		submSrvc:    submSrvc,
		problemSrvc: problemSrvc,
		userSrvc:    userSrvc,
		heartbeat:   heartbeat,
		router:      router,
	}

	server.routes()

	return server
}

func (httpserver *HttpServer) routes() {
	r := httpserver.router
	r.Post("/helloWorld", httpserver.helloWorld)

	r.Post("/submit", httpserver.submit)
	r.Post("/getVerdict", httpserver.getVerdict)
	r.Post("/getSubmissions", httpserver.getSubmissions)

	r.Get("/getProblems", httpserver.listProblems)
	r.Post("/getProblemData", httpserver.getProblemData)
	r.Get("/judgeIsOnline", httpserver.judgeIsOnline)

	r.Post("/registerWithEmail", httpserver.registerWithEmail)
	r.Post("/loginWithEmail", httpserver.loginWithEmail)
	r.Post("/getUserData", httpserver.getUserData)
	r.Post("/updateUserData", httpserver.updateUserData)
}

func (httpserver *HttpServer) Handler() http.Handler {
	return httpserver.router
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (httpserver *HttpServer) Start(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           httpserver.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		if err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// ctxLogger makes the request logger available to the services.
func ctxLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.WithLogger(r.Context(), httplog.LogEntry(r.Context()))
		if reqID := middleware.GetReqID(ctx); reqID != "" {
			ctx = logger.WithRequestID(ctx, reqID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
