package cmd

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/redis/rueidis"
	"gorm.io/gorm"

	"todo-service.com/todo-service/internal/classifier"
	config "todo-service.com/todo-service/internal/configs"
	repository "todo-service.com/todo-service/internal/repositories"
	"todo-service.com/todo-service/internal/services"
)

type app struct {
	cfg       config.Config
	db        *gorm.DB
	redis     rueidis.Client
	todos     *services.TodoService
	assignees *services.AssigneeService
}

func loadConfig() (config.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}
	return config.Load()
}

// newClassifier loads the model once and puts the redis cache in front of it
// when one is configured. A cache that cannot be reached is skipped.
func newClassifier(cfg config.Config) (classifier.Classifier, rueidis.Client) {
	adapter := classifier.Load(cfg.ClassifierModelPath)
	if !adapter.Loaded() {
		return adapter, nil
	}

	redisClient, err := config.NewRedisClient(cfg.RedisAddr())
	if err != nil {
		log.Printf("classification cache disabled: %v", err)
		return adapter, nil
	}
	if redisClient == nil {
		return adapter, nil
	}
	return classifier.NewCached(adapter, redisClient, cfg.ClassifierCacheTTL), redisClient
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	db, err := config.NewDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	c, redisClient := newClassifier(cfg)
	store := repository.NewStore(db)

	return &app{
		cfg:       cfg,
		db:        db,
		redis:     redisClient,
		todos:     services.NewTodoService(store, c, nil),
		assignees: services.NewAssigneeService(store),
	}, nil
}

func (a *app) Close() {
	if a.redis != nil {
		a.redis.Close()
	}
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
