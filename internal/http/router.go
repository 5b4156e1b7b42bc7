package http

import (
	"net/http"
	"strings"
	"time"

	"jobport/internal/domain/user"
	"jobport/internal/http/handlers"
	"jobport/internal/http/metrics"
	httpmw "jobport/internal/http/middleware"
)

type RouterDependencies struct {
	AuthHandler         *handlers.AuthHandler
	JobHandler          *handlers.JobHandler
	ApplicationHandler  *handlers.ApplicationHandler
	CompanyHandler      *handlers.CompanyHandler
	StatsHandler        *handlers.StatsHandler
	NotificationHandler *handlers.NotificationHandler
	MetricsHandler      *handlers.MetricsHandler
	AuthMiddleware      *httpmw.AuthMiddleware
	Metrics             *metrics.Collector
	RequestTimeout      time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(), httpmw.RequestID, httpmw.Logging, httpmw.BodyLimit(maxBodyBytes), httpmw.Recover, httpmw.Metrics(r.deps.Metrics), httpmw.Timeout(r.deps.RequestTimeout))
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodGet && path == "/metrics":
			r.deps.MetricsHandler.Get(w, req)
			return
		case req.Method == http.MethodPost && path == "/signup":
			r.deps.AuthHandler.Signup(w, req)
			return
		case req.Method == http.MethodPost && path == "/login":
			r.deps.AuthHandler.Login(w, req)
			return
		case req.Method == http.MethodPost && path == "/forgot-password":
			r.deps.AuthHandler.ForgotPassword(w, req)
			return
		case req.Method == http.MethodPost && path == "/reset-password":
			r.deps.AuthHandler.ResetPassword(w, req)
			return
		case req.Method == http.MethodGet && path == "/jobs":
			r.deps.JobHandler.List(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/jobs/") && path != "/jobs/mine":
			r.deps.JobHandler.Get(w, req)
			return
		}

		if strings.HasPrefix(path, "/jobs") || strings.HasPrefix(path, "/applications") || strings.HasPrefix(path, "/companies") || strings.HasPrefix(path, "/stats") || strings.HasPrefix(path, "/profile") || strings.HasPrefix(path, "/notifications") {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				r.handleProtected(w, req)
			}))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	switch {
	case req.Method == http.MethodGet && path == "/jobs/mine":
		httpmw.RequireRole(user.RoleRecruiter, user.RoleAdmin)(http.HandlerFunc(r.deps.JobHandler.ListMine)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/jobs":
		httpmw.RequireRole(user.RoleRecruiter, user.RoleAdmin)(http.HandlerFunc(r.deps.JobHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/jobs/"):
		httpmw.RequireRole(user.RoleRecruiter, user.RoleAdmin)(http.HandlerFunc(r.deps.JobHandler.Update)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/jobs/"):
		httpmw.RequireRole(user.RoleRecruiter, user.RoleAdmin)(http.HandlerFunc(r.deps.JobHandler.Delete)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPost && path == "/applications":
		r.deps.ApplicationHandler.Apply(w, req)
		return
	case req.Method == http.MethodGet && path == "/applications":
		r.deps.ApplicationHandler.List(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/applications/") && strings.HasSuffix(path, "/status"):
		r.deps.ApplicationHandler.UpdateStatus(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/applications/"):
		r.deps.ApplicationHandler.Get(w, req)
		return
	case req.Method == http.MethodPost && path == "/companies":
		httpmw.RequireRole(user.RoleRecruiter, user.RoleAdmin)(http.HandlerFunc(r.deps.CompanyHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/companies/") && strings.HasSuffix(path, "/founding-info"):
		httpmw.RequireRole(user.RoleRecruiter, user.RoleAdmin)(http.HandlerFunc(r.deps.CompanyHandler.UpdateFoundingInfo)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/companies/") && strings.HasSuffix(path, "/social-links"):
		httpmw.RequireRole(user.RoleRecruiter, user.RoleAdmin)(http.HandlerFunc(r.deps.CompanyHandler.UpdateSocialLinks)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/companies/") && strings.HasSuffix(path, "/contact-info"):
		httpmw.RequireRole(user.RoleRecruiter, user.RoleAdmin)(http.HandlerFunc(r.deps.CompanyHandler.UpdateContactInfo)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/companies/") && strings.HasSuffix(path, "/complete"):
		httpmw.RequireRole(user.RoleRecruiter, user.RoleAdmin)(http.HandlerFunc(r.deps.CompanyHandler.Complete)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/companies/"):
		r.deps.CompanyHandler.Get(w, req)
		return
	case req.Method == http.MethodGet && path == "/stats":
		r.deps.StatsHandler.Dashboard(w, req)
		return
	case req.Method == http.MethodGet && path == "/stats/recent-applications":
		r.deps.StatsHandler.RecentApplications(w, req)
		return
	case req.Method == http.MethodGet && path == "/profile/completion":
		r.deps.StatsHandler.ProfileCompletion(w, req)
		return
	case req.Method == http.MethodGet && path == "/notifications":
		r.deps.NotificationHandler.List(w, req)
		return
	case req.Method == http.MethodPatch && strings.HasPrefix(path, "/notifications/") && strings.HasSuffix(path, "/read"):
		r.deps.NotificationHandler.MarkRead(w, req)
		return
	}

	http.NotFound(w, req)
}
