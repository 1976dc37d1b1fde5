package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-maze/api"
	api_i "github.com/beka-birhanu/vinom-maze/api/i"
	"github.com/beka-birhanu/vinom-maze/api/identity"
	mazeapi "github.com/beka-birhanu/vinom-maze/api/maze"
	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/infrastruture/cache"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/infrastruture/sortedstorage"
	"github.com/beka-birhanu/vinom-maze/infrastruture/token"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	cfg            config.Config
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	recipeRepo     *repo.RecipeRepo
	snapshotCache  i.SnapshotCache
	recentIndex    i.RecentIndex
	jwtTokenizer   i.Tokenizer
	mazeService    i.MazeService
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *logger.Logger
)

func initConfig() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading configuration: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Configuration loaded")
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRecipeRepo(ctx context.Context, client *mongo.Client) {
	recipeRepo = repo.NewRecipeRepo(client, cfg.DBName, "recipes")
	if err := recipeRepo.EnsureIndexes(ctx); err != nil {
		appLogger.Warning(fmt.Sprintf("Creating recipe indexes: %v", err))
	}
	appLogger.Info("Recipe repository initialized")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	snapshotCache = cache.NewRedisSnapshotCache(redisClient, cfg.CacheTTL)
	recentIndex = sortedstorage.NewRedisRecentIndex(redisClient, 24*time.Hour)
	appLogger.Info("Connected to Redis")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(cfg.JWTSecret, cfg.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initMazeService() {
	mazeLogger, err := logger.New("MAZE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze logger: %v", err))
		os.Exit(1)
	}

	mazeService, err = service.NewMazeService(service.MazeServiceConfig{
		Repo:        recipeRepo,
		Cache:       snapshotCache,
		Recent:      recentIndex,
		Logger:      mazeLogger,
		MaxGridSize: cfg.MaxGridSize,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze service initialized")
}

func initMazeController() {
	apiLogger, err := logger.New("API", config.ColorMagenta, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating api logger: %v", err))
		os.Exit(1)
	}

	mazeController, err = mazeapi.NewMazeController(mazeService, apiLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", cfg.HostIP, cfg.RESTPort),
		BaseURL:                 "/api",
		GinMode:                 cfg.GinMode,
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initConfig()
	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	initRecipeRepo(ctx, mongoClient)
	initRedis(ctx)
	defer redisClient.Close()

	initJWTTokenizer()
	initMazeService()
	initMazeController()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
