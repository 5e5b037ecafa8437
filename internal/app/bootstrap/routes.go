// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	authgooglefeature "github.com/crestlinedev/crestline/internal/app/features/authgoogle"
	benefitsfeature "github.com/crestlinedev/crestline/internal/app/features/benefits"
	contactfeature "github.com/crestlinedev/crestline/internal/app/features/contact"
	divisionsfeature "github.com/crestlinedev/crestline/internal/app/features/divisions"
	galleriesfeature "github.com/crestlinedev/crestline/internal/app/features/galleries"
	healthfeature "github.com/crestlinedev/crestline/internal/app/features/health"
	logoutfeature "github.com/crestlinedev/crestline/internal/app/features/logout"
	membersfeature "github.com/crestlinedev/crestline/internal/app/features/members"
	newsfeature "github.com/crestlinedev/crestline/internal/app/features/news"
	pagesfeature "github.com/crestlinedev/crestline/internal/app/features/pages"
	subcompaniesfeature "github.com/crestlinedev/crestline/internal/app/features/subcompanies"
	uploadsfeature "github.com/crestlinedev/crestline/internal/app/features/uploads"
	usersfeature "github.com/crestlinedev/crestline/internal/app/features/users"
	benefitstore "github.com/crestlinedev/crestline/internal/app/store/benefits"
	divisionstore "github.com/crestlinedev/crestline/internal/app/store/divisions"
	emailstore "github.com/crestlinedev/crestline/internal/app/store/emails"
	gallerystore "github.com/crestlinedev/crestline/internal/app/store/galleries"
	memberstore "github.com/crestlinedev/crestline/internal/app/store/members"
	newsstore "github.com/crestlinedev/crestline/internal/app/store/news"
	"github.com/crestlinedev/crestline/internal/app/store/oauthstate"
	pagestore "github.com/crestlinedev/crestline/internal/app/store/pages"
	subcompanystore "github.com/crestlinedev/crestline/internal/app/store/subcompanies"
	userstore "github.com/crestlinedev/crestline/internal/app/store/users"
	"github.com/crestlinedev/crestline/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// The surface has three parts: /api/* is the public read-mostly JSON
// API the marketing site consumes, /admin/api/* is the session-guarded
// CMS API, and /auth plus /logout carry the Google OAuth sign-in flow.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(
		appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain,
		appCfg.SessionTTL, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	db := deps.MongoDatabase

	subcompaniesHandler := subcompaniesfeature.NewHandler(subcompanystore.New(db), logger)
	galleriesHandler := galleriesfeature.NewHandler(gallerystore.New(db), deps.Media, logger)
	newsHandler := newsfeature.NewHandler(newsstore.New(db), logger)
	membersHandler := membersfeature.NewHandler(memberstore.New(db), logger)
	divisionsHandler := divisionsfeature.NewHandler(divisionstore.New(db), logger)
	benefitsHandler := benefitsfeature.NewHandler(benefitstore.New(db), logger)
	pagesHandler := pagesfeature.NewHandler(pagestore.New(db), logger)
	contactHandler := contactfeature.NewHandler(emailstore.New(db), logger)
	usersHandler := usersfeature.NewHandler(userstore.New(db), logger)

	r := chi.NewRouter()

	// Loads the SessionUser into context when a valid cookie is present.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/api/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli).
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public site API.
	r.Mount("/api/pages", pagesfeature.PublicRoutes(pagesHandler))
	r.Mount("/api/subcompanies", subcompaniesfeature.PublicRoutes(subcompaniesHandler))
	r.Mount("/api/gallery", galleriesfeature.PublicRoutes(galleriesHandler))
	r.Mount("/api/news", newsfeature.PublicRoutes(newsHandler))
	r.Mount("/api/members", membersfeature.PublicRoutes(membersHandler))
	r.Mount("/api/divisions", divisionsfeature.PublicRoutes(divisionsHandler))
	r.Mount("/api/benefits", benefitsfeature.PublicRoutes(benefitsHandler))
	r.Mount("/api/contact", contactfeature.PublicRoutes(contactHandler))

	// Authentication.
	authHandler := authgooglefeature.NewHandler(
		sessionMgr, oauthstate.New(db), userstore.New(db),
		appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL, logger)
	r.Mount("/auth", authgooglefeature.Routes(authHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	// CMS API.
	r.Mount("/admin/api/pages", pagesfeature.AdminRoutes(pagesHandler, sessionMgr))
	r.Mount("/admin/api/subcompanies", subcompaniesfeature.AdminRoutes(subcompaniesHandler, sessionMgr))
	r.Mount("/admin/api/gallery", galleriesfeature.AdminRoutes(galleriesHandler, sessionMgr))
	r.Mount("/admin/api/news", newsfeature.AdminRoutes(newsHandler, sessionMgr))
	r.Mount("/admin/api/members", membersfeature.AdminRoutes(membersHandler, sessionMgr))
	r.Mount("/admin/api/divisions", divisionsfeature.AdminRoutes(divisionsHandler, sessionMgr))
	r.Mount("/admin/api/benefits", benefitsfeature.AdminRoutes(benefitsHandler, sessionMgr))
	r.Mount("/admin/api/emails", contactfeature.AdminRoutes(contactHandler, sessionMgr))
	r.Mount("/admin/api/users", usersfeature.AdminRoutes(usersHandler, sessionMgr))

	// Media uploads need blob storage; without it the endpoints 404.
	if deps.Media != nil {
		uploadsHandler := uploadsfeature.NewHandler(deps.Media, logger)
		r.Mount("/admin/api/uploads", uploadsfeature.AdminRoutes(uploadsHandler, sessionMgr))
	}

	return r, nil
}
