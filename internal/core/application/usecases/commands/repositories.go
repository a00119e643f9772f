// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"negcom/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// NegotiationRepoFactory provides access to the negotiation repository within a transaction.
	NegotiationRepoFactory interface {
		NegotiationRepository() ports.NegotiationRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// VehicleUoW manages transactions for vehicle-only operations.
	VehicleUoW interface {
		TxManager
		VehicleRepoFactory
	}

	// VehicleUoWFactory creates new vehicle unit of work instances.
	VehicleUoWFactory interface {
		Create() VehicleUoW
	}

	// NegotiationUoW manages transactions for negotiation-only operations.
	// Used when commands only modify the negotiation aggregate.
	NegotiationUoW interface {
		TxManager
		NegotiationRepoFactory
	}

	// NegotiationUoWFactory creates new negotiation unit of work instances.
	NegotiationUoWFactory interface {
		Create() NegotiationUoW
	}

	// UoW manages transactions across aggregate types. Used for commands
	// that read one aggregate while writing another, such as order
	// placement pricing from the vehicle listing or from an accepted
	// negotiation.
	UoW interface {
		TxManager
		OrderRepoFactory
		VehicleRepoFactory
		NegotiationRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
