package container

import (
	"context"
	"fmt"

	"skroutz/categorytree/internal/cache"
	"skroutz/categorytree/internal/client"
	"skroutz/categorytree/internal/config"
	"skroutz/categorytree/internal/domain"
	"skroutz/categorytree/internal/proxy"
	"skroutz/categorytree/internal/service"
	"skroutz/categorytree/internal/tree"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config  *config.Config
	Client  client.SkroutzClient
	Source  tree.Source
	Service *service.Service

	redis *redis.Client
}

// New creates a new container with all dependencies initialized
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	proxySupplier, err := proxy.NewProxySupplier(ctx, cfg.Skroutz.Proxies, cfg.Skroutz.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize proxy supplier")
	}

	skroutzClient := client.NewSkroutzClient(cfg.Skroutz, proxySupplier)
	container.Client = skroutzClient

	var source tree.Source = skroutzClient

	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.Database,
		})

		// Test connection
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			_ = skroutzClient.Close()
			return nil, errors.Wrap(err, "failed to connect to Redis")
		}
		log.Info("✅ Connected to Redis successfully")

		container.redis = rdb
		source = cache.NewChildrenCache(source, rdb, cfg.Redis)
	}

	container.Source = source
	container.Service = service.NewService(source)

	return container, nil
}

// Run builds and renders the tree of id
func (c *Container) Run(ctx context.Context, id domain.CategoryID, depth int) (string, error) {
	return c.Service.Describe(ctx, id, depth)
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Debug("Shutting down container...")

	var err error
	if c.redis != nil {
		err = errors.CombineErrors(err, c.redis.Close())
	}
	if c.Client != nil {
		err = errors.CombineErrors(err, c.Client.Close())
	}

	return err
}
