package cmd

import (
	"log/slog"
	"time"

	"printorders/api"
	httpin "printorders/internal/adapters/in/http"
	"printorders/internal/adapters/out/jwtauth"
	"printorders/internal/adapters/out/kafka"
	"printorders/internal/adapters/out/postgres"
	"printorders/internal/adapters/out/s3store"
	"printorders/internal/adapters/out/woocommerce"
	"printorders/internal/core/application/access"
	"printorders/internal/core/application/artifacts"
	"printorders/internal/core/application/usecases/commands"
	"printorders/internal/core/application/usecases/queries"
	"printorders/internal/core/domain/model/stage"
	"printorders/internal/core/domain/services"
	"printorders/internal/core/ports"
	"printorders/internal/jobs"

	"gorm.io/gorm"
)

// upstreamMaxRetries bounds retries of one upstream page.
const upstreamMaxRetries = 3

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	now        func() time.Time

	graph      stage.Graph
	aggregator services.StatsAggregator
	statsLoc   *time.Location
	gateway    *artifacts.Gateway
	publisher  ports.EventPublisher
	closers    []func()
}

// NewCompositionRoot builds the long-lived collaborators once: the artifact
// gateway, the event publisher and the stage graph. Handlers are created per
// call from these.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	policy, err := config.UnknownStagePolicy()
	if err != nil {
		return nil, err
	}
	statsLoc, err := config.StatsLocation()
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		now:        time.Now,
		graph:      stage.NewGraph(policy),
		aggregator: services.NewStatsAggregator(config.StatsDueSoonDays),
		statsLoc:   statsLoc,
	}

	c.gateway = c.newArtifactGateway()

	if len(config.KafkaHost) == 0 {
		logger.Info("KAFKA_HOST not set, stage change events are dropped")
		c.publisher = kafka.NopPublisher{}
	} else {
		publisher, err := kafka.NewPublisher(config.KafkaHost, config.KafkaOrderChangedTopic, logger)
		if err != nil {
			return nil, err
		}
		c.publisher = publisher
		c.closers = append(c.closers, publisher.Close)
	}

	return c, nil
}

// Close releases the connections opened by the composition root.
func (c *CompositionRoot) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

func (c *CompositionRoot) newArtifactGateway() *artifacts.Gateway {
	settings := artifacts.Settings{
		Bucket:       c.config.S3Bucket,
		Region:       c.config.S3Region,
		AccessKey:    c.config.S3AccessKey,
		SecretKey:    c.config.S3SecretKey,
		UploadURLTTL: c.config.UploadURLTTL,
		ViewURLTTL:   c.config.ViewURLTTL,
		LocalDir:     c.config.LocalUploadDir,
	}

	var store ports.ObjectStore
	if missing := settings.Missing(); len(missing) == 0 {
		store = s3store.New(s3store.Options{
			Bucket:    c.config.S3Bucket,
			Region:    c.config.S3Region,
			AccessKey: c.config.S3AccessKey,
			SecretKey: c.config.S3SecretKey,
			Endpoint:  c.config.S3Endpoint,
		})
	} else {
		c.logger.Info("object store not configured, using local uploads", "missing", missing, "dir", settings.LocalDir)
	}

	return artifacts.NewGateway(settings, store, c.now, c.logger)
}

// ArtifactGateway returns the shared artifact gateway.
func (c *CompositionRoot) ArtifactGateway() *artifacts.Gateway {
	return c.gateway
}

func (c *CompositionRoot) CreateGuard() *access.Guard {
	verifier := jwtauth.NewVerifier(c.config.AuthJWTSecret, c.config.AuthJWTIssuer, c.now)
	roles := access.NewChainRoleResolver(
		access.NewClaimRoleResolver(c.config.AuthRoleClaimMaxAge, c.now),
		access.NewStoreRoleResolver(postgres.NewProfileReader(c.gormDB)),
	)
	return access.NewGuard(verifier, roles, c.logger)
}

func (c *CompositionRoot) CreateGate() (*httpin.Gate, error) {
	return httpin.NewGate(api.Spec, c.CreateGuard(), c.logger)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		UpdateOrder:        c.CreateUpdateOrderCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		AssignVendor:       c.CreateAssignVendorCommandHandler(),
		SyncUpstreamOrders: c.CreateSyncUpstreamOrdersCommandHandler(),
		SaveStatsSnapshot:  c.CreateSaveStatsSnapshotCommandHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		ListVendorOrders:   c.CreateListVendorOrdersQueryHandler(),
		GetStats:           c.CreateGetStatsQueryHandler(),
		ListVendors:        c.CreateListVendorsQueryHandler(),
		ListStatsSnapshots: c.CreateListStatsSnapshotsQueryHandler(),
		GetStatsSnapshot:   c.CreateGetStatsSnapshotQueryHandler(),
	}, c.gateway, c.now)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateSyncUpstreamOrdersCommandHandler(),
		c.CreateSaveStatsSnapshotCommandHandler(),
		jobs.Schedules{
			UpstreamSync:  c.config.UpstreamSyncSchedule,
			StatsSnapshot: c.config.StatsSnapshotSchedule,
		},
		c.logger,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory(), c.graph, c.publisher, c.now)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignVendorCommandHandler() commands.AssignVendorCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignVendorCommandHandler(f, c.publisher, c.now)
}

func (c *CompositionRoot) CreateSyncUpstreamOrdersCommandHandler() commands.SyncUpstreamOrdersCommandHandler {
	source := woocommerce.NewClient(woocommerce.Settings{
		BaseURL:        c.config.WooCommerceURL,
		ConsumerKey:    c.config.WooCommerceConsumerKey,
		ConsumerSecret: c.config.WooCommerceConsumerSecret,
		MaxRetries:     upstreamMaxRetries,
	}, nil, c.logger)
	return commands.NewSyncUpstreamOrdersCommandHandler(source, c.orderUoWFactory(), c.now, c.logger)
}

func (c *CompositionRoot) CreateSaveStatsSnapshotCommandHandler() commands.SaveStatsSnapshotCommandHandler {
	return commands.NewSaveStatsSnapshotCommandHandler(
		postgres.NewOrderReader(c.gormDB),
		c.aggregator,
		c.gateway,
		c.statsLoc,
	)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(postgres.NewOrderReader(c.gormDB))
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(postgres.NewOrderReader(c.gormDB))
}

func (c *CompositionRoot) CreateListVendorOrdersQueryHandler() queries.ListVendorOrdersQueryHandler {
	return queries.NewListVendorOrdersQueryHandler(postgres.NewOrderReader(c.gormDB))
}

func (c *CompositionRoot) CreateGetStatsQueryHandler() queries.GetStatsQueryHandler {
	return queries.NewGetStatsQueryHandler(postgres.NewOrderReader(c.gormDB), c.aggregator, c.statsLoc)
}

func (c *CompositionRoot) CreateListVendorsQueryHandler() queries.ListVendorsQueryHandler {
	return queries.NewListVendorsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStatsSnapshotsQueryHandler() queries.ListStatsSnapshotsQueryHandler {
	return queries.NewListStatsSnapshotsQueryHandler(c.gateway)
}

func (c *CompositionRoot) CreateGetStatsSnapshotQueryHandler() queries.GetStatsSnapshotQueryHandler {
	return queries.NewGetStatsSnapshotQueryHandler(c.gateway)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
