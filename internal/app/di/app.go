package di

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"ecourts_backend/internal/app/router"
	adminadapters "ecourts_backend/internal/feature/admin/adapters"
	adminhandler "ecourts_backend/internal/feature/admin/transport/handler"
	adminusecase "ecourts_backend/internal/feature/admin/usecase"
	authadapters "ecourts_backend/internal/feature/auth/adapters"
	authentity "ecourts_backend/internal/feature/auth/domain/entity"
	authhandler "ecourts_backend/internal/feature/auth/transport/handler"
	authusecase "ecourts_backend/internal/feature/auth/usecase"
	caseadapters "ecourts_backend/internal/feature/cases/adapters"
	caseentity "ecourts_backend/internal/feature/cases/domain/entity"
	casehandler "ecourts_backend/internal/feature/cases/transport/handler"
	caseusecase "ecourts_backend/internal/feature/cases/usecase"
	causelistadapters "ecourts_backend/internal/feature/causelist/adapters"
	"ecourts_backend/internal/feature/causelist/adapters/pdf"
	causelistentity "ecourts_backend/internal/feature/causelist/domain/entity"
	causelisthandler "ecourts_backend/internal/feature/causelist/transport/handler"
	causelistusecase "ecourts_backend/internal/feature/causelist/usecase"
	"ecourts_backend/internal/feature/hearings/adapters/placeholder"
	hearingshandler "ecourts_backend/internal/feature/hearings/transport/handler"
	hearingsusecase "ecourts_backend/internal/feature/hearings/usecase"
	"ecourts_backend/internal/platform/config"
	infradb "ecourts_backend/internal/platform/db"
	platformhandler "ecourts_backend/internal/platform/http/handler"
	jwtmw "ecourts_backend/internal/platform/jwt"
	"ecourts_backend/internal/shared/ratelimiter"
	"ecourts_backend/internal/web"
)

// ErrMissingJWTSecret is returned by NewServer when JWT_SECRET is empty.
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

// NewServer assembles every feature on db and returns the HTTP engine.
// rdb may be nil. Seed accounts are created when enabled.
func NewServer(ctx context.Context, cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, error) {
	if cfg.JWT.Secret == "" {
		return nil, ErrMissingJWTSecret
	}
	loc, err := time.LoadLocation(cfg.CauseList.Location)
	if err != nil {
		return nil, fmt.Errorf("load cause list location: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	sessionRepo := NewSessionRepository(rdb, db)
	caseRepo := caseadapters.NewCaseGorm(db)
	cachedCases := NewCaseStore(rdb, db)
	fileStore, err := NewFileStore(ctx, cfg.Storage, cfg.CauseList.OutputDir)
	if err != nil {
		return nil, err
	}

	// Usecase
	tokens := jwtmw.NewGenerator(cfg.JWT.Secret, cfg.JWT.AccessTTL)
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, tokens, authusecase.Options{
		RefreshTTL:  cfg.JWT.RefreshTTL,
		MaxSessions: cfg.JWT.MaxSessions,
	})
	if cfg.Seed.Enabled {
		if err := authUC.SeedDefaults(ctx, SeedUsers(cfg.Seed)); err != nil {
			return nil, err
		}
	}
	reconcileUC := caseusecase.NewReconcileUsecase(NewLookup(cfg.ECourts), cachedCases)
	hearingsUC := hearingsusecase.NewHearingsUsecase(placeholder.NewGenerator(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), loc))
	causeListUC := causelistusecase.NewCauseListUsecase(caseRepo, pdf.NewRenderer(pdf.Options{}), fileStore,
		causelistadapters.NewCauseListGorm(db), loc)
	statsUC := adminusecase.NewStatsUsecase(cachedCases, authUC, adminadapters.NewFileSize(sqlitePath(cfg.Database)), loc)

	// Handler
	tmpl, err := web.Templates()
	if err != nil {
		return nil, err
	}
	handlers := router.Handlers{
		Health: platformhandler.NewHealthHandler(sqlDB),
		Auth: authhandler.NewAuthHandler(authUC, authhandler.CookieConfig{
			Name:   cfg.JWT.CookieName,
			Secure: cfg.JWT.CookieSecure,
			MaxAge: cfg.JWT.AccessTTL,
		}),
		Users:     authhandler.NewUserAdminHandler(authUC),
		Cases:     casehandler.NewCaseHandler(reconcileUC),
		Hearings:  hearingshandler.NewHearingsHandler(hearingsUC),
		CauseList: causelisthandler.NewCauseListHandler(causeListUC),
		Stats:     adminhandler.NewStatsHandler(statsUC),
		Pages:     web.NewPageHandler(),
	}

	mw := jwtmw.NewMiddleware(cfg.JWT.Secret, cfg.JWT.CookieName, authadapters.NewAccountLookup(userRepo))
	return router.NewRouter(handlers, mw, router.Options{
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Templates:   tmpl,
	}), nil
}

// NewRefresher assembles the batch refresh over every stored case, paced at perMinute portal calls.
func NewRefresher(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *caseusecase.RefreshUsecase {
	caseRepo := caseadapters.NewCaseGorm(db)
	reconcileUC := caseusecase.NewReconcileUsecase(NewLookup(cfg.ECourts), NewCaseStore(rdb, db))
	limiter := ratelimiter.NewRateLimiter(cfg.ECourts.RefreshPerMinute, time.Minute)
	return caseusecase.NewRefreshUsecase(caseRepo, reconcileUC, limiter)
}

// Models lists every table the server migrates.
func Models() []any {
	return []any{
		&authentity.User{},
		&authadapters.SessionModel{},
		&caseentity.Case{},
		&causelistentity.CauseList{},
	}
}

// SeedUsers converts the seed configuration into accounts.
func SeedUsers(s config.Seed) []authusecase.SeedUser {
	return []authusecase.SeedUser{
		{Mobile: s.AdminMobile, Password: s.AdminPassword, IsAdmin: true},
		{Mobile: s.DemoMobile, Password: s.DemoPassword},
	}
}

// sqlitePath returns the database file for size reporting, or "" for server databases.
func sqlitePath(cfg config.Database) string {
	if cfg.Driver == infradb.DriverSQLite || cfg.Driver == "" {
		return cfg.Path
	}
	return ""
}
