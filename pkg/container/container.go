package container

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"library-catalog/internal/config"
	authorHandler "library-catalog/internal/domains/author/handler"
	authorRepo "library-catalog/internal/domains/author/repository"
	authorService "library-catalog/internal/domains/author/service"
	bookRepo "library-catalog/internal/domains/book/repository"
	infraCache "library-catalog/internal/infrastructure/cache"
	"library-catalog/internal/infrastructure/database"
	"library-catalog/internal/infrastructure/dynamo"
	"library-catalog/pkg/logger"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa tất cả dependencies của application
// Thứ tự khởi tạo: Config → Infrastructure → Repositories → Services → Handlers
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config *config.Config
	DB     *database.PostgresDB   // chỉ có khi STORE_DRIVER=postgres
	Dynamo *dynamodb.Client       // chỉ có khi STORE_DRIVER=dynamodb
	Cache  *infraCache.RedisCache // nil khi Redis tắt hoặc không kết nối được

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	AuthorRepo authorRepo.RepositoryInterface
	BookRepo   bookRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER
	// ========================================
	AuthorService authorService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	AuthorHandler *authorHandler.AuthorHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph
func NewContainer() (*Container, error) {
	logger.Debug("Initializing DI container")

	c := &Container{}

	// STEP 1: CONFIG
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Info("Config loaded", map[string]interface{}{
		"environment":  cfg.App.Environment,
		"store_driver": cfg.Store.Driver,
	})

	// STEP 2: STORE + REPOSITORIES
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cfg.Store.Driver {
	case config.StoreDriverDynamoDB:
		err = c.initDynamoStore(ctx)
	default:
		err = c.initPostgresStore(ctx)
	}
	if err != nil {
		c.Cleanup()
		return nil, err
	}

	// STEP 3: CACHE (không critical)
	c.initCache(ctx)

	// STEP 4: SERVICES
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo)

	// STEP 5: HANDLERS
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)

	logger.Debug("DI container initialized")
	return c, nil
}

func (c *Container) initPostgresStore(ctx context.Context) error {
	dbConfig, err := config.LoadDatabaseConfig(c.Config.Database)
	if err != nil {
		return fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool)
	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)
	return nil
}

func (c *Container) initDynamoStore(ctx context.Context) error {
	dc := c.Config.DynamoDB

	client, err := dynamo.NewClient(ctx, dynamo.Options{
		Region:   dc.Region,
		Endpoint: dc.Endpoint,
	})
	if err != nil {
		return fmt.Errorf("failed to create dynamodb client: %w", err)
	}
	c.Dynamo = client

	if err := dynamo.Ping(ctx, client, dc.AuthorsTable); err != nil {
		return fmt.Errorf("dynamodb health check failed: %w", err)
	}

	c.AuthorRepo = authorRepo.NewDynamoRepository(client, dc.AuthorsTable)
	c.BookRepo = bookRepo.NewDynamoRepository(client, dc.BooksTable, dc.BooksAuthorIndex)
	return nil
}

// initCache bọc AuthorRepo bằng read-through cache khi Redis sẵn sàng.
// Redis failure không critical: log warning và chạy thẳng vào store.
func (c *Container) initCache(ctx context.Context) {
	rc := c.Config.Redis
	if !rc.Enabled {
		return
	}

	redisCache := infraCache.NewRedisCache(rc.Host, rc.Password, rc.DB)
	if err := redisCache.Connect(ctx); err != nil {
		logger.Warn("Redis connection failed (non-critical), author cache disabled", err)
		_ = redisCache.Close()
		return
	}

	c.Cache = redisCache
	c.AuthorRepo = authorRepo.NewCachedRepository(c.AuthorRepo, redisCache, rc.TTL)
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Error("Failed to close database", err)
		}
	}

	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("Failed to close Redis", err)
		}
	}

	logger.Debug("Container cleanup completed")
}
