package di

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"infograph-backend/application/ports"
	"infograph-backend/application/services"
	"infograph-backend/infrastructure/cache"
	"infograph-backend/infrastructure/config"
	"infograph-backend/infrastructure/persistence/memory"
	"infograph-backend/interfaces/http/rest"
	"infograph-backend/interfaces/http/rest/handlers"
	"infograph-backend/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	Metrics     *observability.Collector
	SearchCache *cache.MemoryCache
	Router      *rest.Router
}

var InfrastructureSet = wire.NewSet(
	ProvideLogger,
	ProvideClock,
	ProvideMetrics,
	ProvideErrorHandler,
	ProvideSearchCache,
	wire.Bind(new(ports.Cache), new(*cache.MemoryCache)),
	ProvideRateLimiter,
	ProvideSearchBackend,
	ProvideRenderer,
	ProvideIdentityProvider,
)

var RepositorySet = wire.NewSet(
	memory.NewUserRepository,
	memory.NewSessionRepository,
	memory.NewSourceRepository,
	memory.NewMessageRepository,
	memory.NewInfographicRepository,
	memory.NewImageStore,
	wire.Bind(new(ports.UserRepository), new(*memory.UserRepository)),
	wire.Bind(new(ports.SessionRepository), new(*memory.SessionRepository)),
	wire.Bind(new(ports.SessionReader), new(*memory.SessionRepository)),
	wire.Bind(new(ports.SourceRepository), new(*memory.SourceRepository)),
	wire.Bind(new(ports.SourceReader), new(*memory.SourceRepository)),
	wire.Bind(new(ports.MessageRepository), new(*memory.MessageRepository)),
	wire.Bind(new(ports.MessageReader), new(*memory.MessageRepository)),
	wire.Bind(new(ports.InfographicRepository), new(*memory.InfographicRepository)),
	wire.Bind(new(ports.InfographicReader), new(*memory.InfographicRepository)),
	wire.Bind(new(ports.ImageStore), new(*memory.ImageStore)),
)

var ServiceSet = wire.NewSet(
	ProvideSearchConfig,
	services.NewUserService,
	services.NewSessionService,
	services.NewMessageService,
	services.NewSearchService,
	wire.Bind(new(services.Searcher), new(*services.SearchService)),
	services.NewInfographicService,
	services.NewPipelineService,
	services.NewExportService,
	services.NewChatService,
	services.NewAuthService,
)

var HTTPSet = wire.NewSet(
	handlers.NewUserHandler,
	handlers.NewSessionHandler,
	handlers.NewMessageHandler,
	handlers.NewSearchHandler,
	handlers.NewInfographicHandler,
	handlers.NewAuthHandler,
	handlers.NewChatHandler,
	wire.Struct(new(rest.Handlers), "*"),
	rest.NewRouter,
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	InfrastructureSet,
	RepositorySet,
	ServiceSet,
	HTTPSet,
	wire.Struct(new(Container), "*"),
)
