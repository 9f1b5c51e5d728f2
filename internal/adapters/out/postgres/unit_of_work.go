// Package postgres provides the GORM-based Unit of Work of the development
// backend. A unit of work spans one business transaction over the account and
// order tables and publishes the delivery events recorded inside it once the
// transaction has committed.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx) //nolint:errcheck // no-op after commit
//
//	d, err := uow.DeliveryRepository().Get(ctx, orderID)
//	if err != nil {
//	    return err
//	}
//	if err := d.PickUp(driverID, time.Now()); err != nil {
//	    return err
//	}
//	if err := uow.DeliveryRepository().Update(ctx, d); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance owns its transaction; goroutines must not share one.
package postgres

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"driverapp/internal/adapters/out/postgres/accountrepo"
	"driverapp/internal/adapters/out/postgres/orderrepo"
	"driverapp/internal/devbackend/domain/delivery"
	"driverapp/internal/devbackend/ports"
)

var _ ports.UnitOfWorkFactory = &GormUnitOfWorkFactory{}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool and one event publisher.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.EventPublisher
	logger    *slog.Logger
}

// NewGormUnitOfWorkFactory creates the factory. publisher may be nil, in which
// case recorded events are dropped after commit.
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = slog.Default()
	}
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger.With("component", "unit_of_work"),
	}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:        f.db,
		publisher: f.publisher,
		logger:    f.logger,
		tracked:   make([]*delivery.Delivery, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and tracks the
// deliveries updated inside it.
type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	publisher ports.EventPublisher
	logger    *slog.Logger
	tracked   []*delivery.Delivery
}

// Begin opens the transaction. Calling it twice keeps the first transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit commits the transaction, then publishes the events of every tracked
// delivery. Publishing failures are logged and do not undo the commit.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		uow.tracked = uow.tracked[:0]
		return err
	}

	uow.publishTracked(ctx)
	return nil
}

// Rollback discards the transaction together with the tracked deliveries.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.tracked = uow.tracked[:0]
	return err
}

func (uow *GormUnitOfWork) AccountRepository() ports.AccountRepository {
	return accountrepo.NewGormAccountRepository(uow.conn())
}

func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// TrackAggregate registers a delivery whose events must be published on commit.
// Repositories call it after a successful update.
func (uow *GormUnitOfWork) TrackAggregate(aggregate *delivery.Delivery) {
	uow.tracked = append(uow.tracked, aggregate)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) publishTracked(ctx context.Context) {
	tracked := uow.tracked
	uow.tracked = make([]*delivery.Delivery, 0)

	for _, d := range tracked {
		for _, event := range d.PullEvents() {
			if uow.publisher == nil {
				continue
			}
			if err := uow.publisher.PublishStatusChanged(ctx, event); err != nil {
				uow.logger.Warn("failed to publish status change",
					"order_id", event.OrderID,
					"status", event.Status,
					"error", err)
			}
		}
	}
}
