package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"driverapp/internal/core/domain/model/kernel"
	"driverapp/internal/core/domain/model/order"
	"driverapp/internal/devbackend/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultSeedSchedule publishes one order every thirty seconds.
const DefaultSeedSchedule = "*/30 * * * * *"

// OrderCreator stores a new order and returns its id.
type OrderCreator interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (int64, error)
}

// SeedTemplate describes one order the seeding job can publish.
type SeedTemplate struct {
	RestaurantName  string
	ImageURL        string
	PickupAddress   string
	DeliveryArea    string
	DeliveryAddress string
	// Latitude and Longitude locate the pickup; both zero means unknown.
	Latitude  float64
	Longitude float64
}

// DefaultCatalog is a small set of restaurants spread over the regions.
var DefaultCatalog = []SeedTemplate{
	{RestaurantName: "Noodle Bar", PickupAddress: "1 Raffles Place", DeliveryArea: "East", DeliveryAddress: "80 Marine Parade Rd", Latitude: 1.2840, Longitude: 103.8514},
	{RestaurantName: "Kaya Toast Corner", PickupAddress: "3 Temasek Blvd", DeliveryArea: "North", DeliveryAddress: "30 Woodlands Ave 2"},
	{RestaurantName: "Laksa House", PickupAddress: "50 Jurong Gateway Rd", DeliveryArea: "West", DeliveryAddress: "1 Jurong West Central 2", Latitude: 1.3331, Longitude: 103.7430},
	{RestaurantName: "Satay Street", PickupAddress: "1 HarbourFront Walk", DeliveryArea: "South", DeliveryAddress: "31 Ocean Way"},
	{RestaurantName: "Chicken Rice Stall", PickupAddress: "1 Pasir Ris Central St 3", DeliveryArea: "Central", DeliveryAddress: "68 Orchard Rd"},
}

// OrderSeedingJob publishes a READY_FOR_DELIVERY order on a schedule so that
// drivers on the development backend always have something to pick up. Each
// run takes the next template and the next pickup region in turn.
type OrderSeedingJob struct {
	handler  OrderCreator
	schedule string
	catalog  []SeedTemplate
	cron     *cron.Cron
	logger   *slog.Logger

	mu   sync.Mutex
	next int
}

// NewOrderSeedingJob creates the job. An empty schedule falls back to
// DefaultSeedSchedule and an empty catalog to DefaultCatalog.
func NewOrderSeedingJob(handler OrderCreator, schedule string, catalog []SeedTemplate, logger *slog.Logger) *OrderSeedingJob {
	if schedule == "" {
		schedule = DefaultSeedSchedule
	}
	if len(catalog) == 0 {
		catalog = DefaultCatalog
	}
	return &OrderSeedingJob{
		handler:  handler,
		schedule: schedule,
		catalog:  catalog,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_seeding_job"),
	}
}

// Start registers the job on its schedule.
func (j *OrderSeedingJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if _, err := j.SeedOnce(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order seeding job failed", "error", err)
		}
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order seeding job started", "schedule", j.schedule)
	return nil
}

// Stop stops the order seeding job.
func (j *OrderSeedingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order seeding job stopped")
}

// SeedOnce publishes the next order right away and returns its id.
func (j *OrderSeedingJob) SeedOnce(ctx context.Context) (int64, error) {
	j.mu.Lock()
	n := j.next
	j.next++
	j.mu.Unlock()

	cmd, err := j.commandFor(n)
	if err != nil {
		return 0, err
	}

	id, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		return 0, err
	}

	j.logger.DebugContext(ctx, "Order seeded", "order_id", id, "region", cmd.Draft().Pickup().Location())
	return id, nil
}

func (j *OrderSeedingJob) commandFor(n int) (commands.CreateOrderCommand, error) {
	tpl := j.catalog[n%len(j.catalog)]
	regions := order.Regions()
	region := regions[n%len(regions)]

	var coords *kernel.Coordinates
	if tpl.Latitude != 0 || tpl.Longitude != 0 {
		c, err := kernel.NewCoordinates(tpl.Latitude, tpl.Longitude)
		if err != nil {
			return commands.CreateOrderCommand{}, err
		}
		coords = &c
	}

	pickup, err := order.NewStop(region.String(), tpl.PickupAddress, coords)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}
	drop, err := order.NewStop(tpl.DeliveryArea, tpl.DeliveryAddress, nil)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	return commands.NewCreateOrderCommand(order.Details{
		RestaurantName: tpl.RestaurantName,
		ImageURL:       tpl.ImageURL,
		OrderTime:      time.Now().UTC(),
	}, pickup, drop)
}
