// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"menu/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// NutritionRepoFactory provides access to nutrition repository within a transaction.
	NutritionRepoFactory interface {
		NutritionRepository() ports.NutritionRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// NutritionUoW manages transactions for nutrition-only operations.
	NutritionUoW interface {
		TxManager
		NutritionRepoFactory
	}

	// NutritionUoWFactory creates new nutrition unit of work instances.
	NutritionUoWFactory interface {
		Create() NutritionUoW
	}
)
