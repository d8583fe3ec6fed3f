package bootstrap

import (
	"context"
	"log"
	"time"

	"welllog-ai-be/internal/config"
	"welllog-ai-be/internal/controller"
	"welllog-ai-be/internal/pkg/logger"
	"welllog-ai-be/internal/repository/cache"
	"welllog-ai-be/internal/repository/memory"
	"welllog-ai-be/internal/repository/unitofwork"
	"welllog-ai-be/internal/service"
	"welllog-ai-be/pkg/llm/factory"
	pktNats "welllog-ai-be/pkg/nats"
	"welllog-ai-be/pkg/objstore"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	FileController          controller.IFileController
	VisualizationController controller.IVisualizationController
	AiController            controller.IAiController

	// Background services (main.go starts the consumer)
	ConsumerService service.IConsumerService

	Logger  logger.ILogger
	Storage objstore.Storage
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event bus (in-process audit pipeline)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	publisherService := service.NewPublisherService(cfg.App.AuditTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.AuditTopic, sysLogger)

	// 3. Infrastructure collaborators, all optional except object storage.
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		var err error
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		}
	}

	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}
	vizCache := cache.NewVisualizationCache(rdb)
	groundingRepo := memory.NewGroundingRepository()

	storage, err := objstore.New(context.Background(), objstore.Config{
		Backend:   cfg.Storage.Backend,
		LocalDir:  cfg.Storage.LocalDir,
		BaseURL:   cfg.App.BaseURL,
		GCSBucket: cfg.Storage.GCSBucket,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize object storage: %v", err)
	}

	llmProvider, err := factory.NewLLMProvider(
		context.Background(),
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GeminiAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, llmProvider.ModelName())

	generationTimeout := time.Duration(cfg.Ai.GenerationTimeout) * time.Second

	// 4. Services
	curveDataService := service.NewCurveDataService(uowFactory)
	fileService := service.NewFileService(
		uowFactory,
		storage,
		publisherService,
		natsPub,
		vizCache,
		groundingRepo,
		sysLogger,
	)
	visualizationService := service.NewVisualizationService(curveDataService, vizCache, sysLogger)
	interpretationService := service.NewInterpretationService(
		uowFactory,
		curveDataService,
		llmProvider,
		publisherService,
		natsPub,
		generationTimeout,
		sysLogger,
	)
	chatService := service.NewChatService(
		uowFactory,
		groundingRepo,
		llmProvider,
		generationTimeout,
		sysLogger,
	)

	return &Container{
		FileController:          controller.NewFileController(fileService),
		VisualizationController: controller.NewVisualizationController(visualizationService),
		AiController:            controller.NewAiController(interpretationService, chatService),
		ConsumerService:         consumerService,
		Logger:                  sysLogger,
		Storage:                 storage,
	}
}
