package api

import (
	"youthstream/palco/internal/auth"
	"youthstream/palco/internal/common"
	"youthstream/palco/internal/config"
	"youthstream/palco/internal/db"
	"youthstream/palco/internal/db/repositories"
	"youthstream/palco/internal/metrics"
	"youthstream/palco/internal/services"
)

type Repositories struct {
	UserGorm *repositories.UserRepositoryGORM
	Stream   *repositories.StreamRepositoryGORM
	Chat     *repositories.ChatRepositoryGORM
	Donation *repositories.DonationRepository
}

type Services struct {
	Auth      *services.AuthService
	User      *services.UserService
	Stream    *services.StreamService
	Vip       *services.VipService
	Donation  *services.DonationService
	Chat      *services.ChatService
	AccessLog *services.AccessLogService
	Cache     common.CacheInterface
}

type Dependencies struct {
	Repo     *Repositories
	Services *Services
	Issuer   *auth.TokenIssuer
}

// InitDependencies wires repositories and services off the shared DB
// handles. Both DB connections must be initialized first.
func InitDependencies(cfg *config.AppConfig, metricsReg *metrics.MetricsRegistry) (*Dependencies, error) {

	repos := &Repositories{
		UserGorm: repositories.NewUserRepositoryGORM(db.PgDB),
		Stream:   repositories.NewStreamRepositoryGORM(db.PgDB),
		Chat:     repositories.NewChatRepositoryGORM(db.PgDB),
		Donation: repositories.NewDonationRepository(db.DB),
	}

	var cacheSvc common.CacheInterface
	if cfg.UseRedisCache {
		client := common.NewRedisClient(cfg.Redis.Addr(), cfg.Redis.Password, cfg.Redis.DB)
		cacheSvc = common.NewRedisCacheService(client)
	} else {
		cacheSvc = common.NewCacheService(60, 600)
	}

	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)
	accessLog := services.NewAccessLogService(256)

	svcs := &Services{
		Auth:      services.NewAuthService(repos.UserGorm, issuer),
		User:      services.NewUserService(repos.UserGorm, repos.Stream),
		Stream:    services.NewStreamService(repos.Stream, cacheSvc, metricsReg, accessLog),
		Vip:       services.NewVipService(repos.UserGorm, repos.Stream, cfg.FrontendURL),
		Donation:  services.NewDonationService(repos.Donation, metricsReg),
		Chat:      services.NewChatService(repos.Chat, repos.UserGorm, cacheSvc, metricsReg),
		AccessLog: accessLog,
		Cache:     cacheSvc,
	}

	return &Dependencies{
		Repo:     repos,
		Services: svcs,
		Issuer:   issuer,
	}, nil
}
