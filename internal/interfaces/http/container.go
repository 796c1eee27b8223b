package http

import (
	"context"
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/auth"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/config"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/database"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/permission"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/printing"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/pubsub"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/ratelimit"
	"github.com/lorenzobigazzi0/cassa/internal/infrastructure/realtime"
	"github.com/lorenzobigazzi0/cassa/internal/interfaces/http/middleware"
	"github.com/lorenzobigazzi0/cassa/internal/shared/logger"
)

// Container wires infrastructure, repositories, use cases and handlers, and
// releases what it opened on Shutdown.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface

	redis    *redis.Client
	mirror   *pubsub.NATSMirror
	registry *realtime.Registry
	adapters *printing.Registry
	enforcer *permission.Enforcer
	jwtSvc   *auth.JWTService
	hasher   *auth.StaffPasswords

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	loginLimiter         *middleware.RateLimiter

	shutdownOnce sync.Once
}

func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		c.Shutdown()
		return nil, err
	}
	c.repos = newRepositories(db)
	c.ucs = c.newUseCases()
	c.hdlrs = c.newHandlers()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	c.registry = realtime.NewRegistry(c.log)

	if c.cfg.NATS.Enabled {
		mirror, err := pubsub.NewNATSMirror(c.cfg.NATS.URL, c.cfg.NATS.SubjectPrefix, c.log)
		if err != nil {
			return fmt.Errorf("failed to connect nats mirror: %w", err)
		}
		c.mirror = mirror
		c.registry.SetMirror(mirror)
		c.log.Infow("nats mirror enabled", "url", c.cfg.NATS.URL, "prefix", c.cfg.NATS.SubjectPrefix)
	}

	adapters, err := printing.NewRegistry(c.cfg.Printing, c.log)
	if err != nil {
		return fmt.Errorf("failed to build print adapters: %w", err)
	}
	c.adapters = adapters

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return err
	}
	if err := permission.InitFloorPermissions(enforcer, c.log); err != nil {
		return err
	}
	c.enforcer = enforcer

	c.jwtSvc = auth.NewJWTService(c.cfg.JWT.Secret, c.cfg.JWT.AccessExpMinutes)
	c.hasher = auth.NewStaffPasswords(c.cfg.JWT)

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)

	if c.cfg.Redis.Enabled {
		c.redis = redis.NewClient(&redis.Options{
			Addr:     c.cfg.Redis.GetAddr(),
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
		})
		c.loginLimiter = middleware.NewRateLimiter(
			ratelimit.NewRedisRateLimiter(c.redis),
			"login",
			ratelimit.RateLimitConfig{
				RequestsPerMinute: c.cfg.RateLimit.LoginPerMinute,
				RequestsPerHour:   c.cfg.RateLimit.LoginPerHour,
			},
			c.log,
		)
	}

	return nil
}

// ValidatePrinters fails when a stored printer names a kind no adapter serves.
func (c *Container) ValidatePrinters(ctx context.Context) error {
	printers, err := c.repos.printerRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list printers: %w", err)
	}
	return c.adapters.ValidatePrinters(printers)
}

func (c *Container) ping(ctx context.Context) error {
	return database.Ping(ctx, c.db)
}

func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// Shutdown disconnects every socket and closes the optional backends. It is
// safe to call more than once.
func (c *Container) Shutdown() {
	c.shutdownOnce.Do(func() {
		if c.registry != nil {
			c.registry.Close()
		}
		if c.mirror != nil {
			c.mirror.Close()
		}
		if c.redis != nil {
			if err := c.redis.Close(); err != nil {
				c.log.Warnw("failed to close redis client", "error", err)
			}
		}
	})
}
