// Package postgres implements the unit of work over GORM.
//
// A unit of work wraps one database transaction shared by every repository it
// hands out, and records the aggregates written through them:
//
//	uow := postgres.NewGormUnitOfWorkFactory(db).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.NutritionRepository().Add(ctx, labelID, facts); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Instances are not safe for concurrent use; create one per operation.
package postgres

import (
	"context"

	"menu/internal/adapters/out/postgres/nutritionrepo"
	"menu/internal/adapters/out/postgres/orderrepo"
	"menu/internal/core/ports"

	"gorm.io/gorm"
)

// TrackedAggregate is an aggregate written during the unit of work, keyed by
// its business identifier (order reference or nutrition label id).
type TrackedAggregate struct {
	Key       string
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a fresh unit of work with no active transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return newGormUnitOfWork(f.db)
}

// GormUnitOfWork coordinates a transaction across the order and nutrition
// repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []TrackedAggregate
}

func newGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                db,
		trackedAggregates: make([]TrackedAggregate, 0),
	}
}

// Begin starts a transaction. Calling Begin while one is active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the active transaction. Without one it returns
// gorm.ErrInvalidTransaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the active transaction and forgets tracked aggregates.
// Without an active transaction it returns gorm.ErrInvalidTransaction, which
// makes a deferred Rollback after Commit harmless.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository returns an order repository bound to the active transaction,
// or to the plain connection when none is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// NutritionRepository returns a nutrition repository bound like OrderRepository.
func (uow *GormUnitOfWork) NutritionRepository() ports.NutritionRepository {
	return nutritionrepo.NewGormNutritionRepository(uow.conn(), uow)
}

// TrackAggregate is called by repositories after a successful write.
func (uow *GormUnitOfWork) TrackAggregate(key string, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, TrackedAggregate{
		Key:       key,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns a copy of the aggregates written so far.
func (uow *GormUnitOfWork) TrackedAggregates() []TrackedAggregate {
	out := make([]TrackedAggregate, len(uow.trackedAggregates))
	copy(out, uow.trackedAggregates)
	return out
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
