// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"cargopay/internal/core/ports"
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

	// VerificationRepoFactory provides access to the verification
	// repository within a transaction.
	VerificationRepoFactory interface {
		VerificationRepository() ports.VerificationRepository
	}

	// AssignmentRepoFactory provides access to the assignment repository
	// within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
	}

	// VerificationUoW manages transactions for verification-only
	// operations.
	VerificationUoW interface {
		TxManager
		VerificationRepoFactory
	}

	// VerificationUoWFactory creates new verification unit of work instances.
	VerificationUoWFactory interface {
		Create() VerificationUoW
	}

	// AssignmentUoW manages transactions for assignment-only operations.
	AssignmentUoW interface {
		TxManager
		AssignmentRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// UoW manages transactions across both verification and assignment
	// aggregates. Used for commands that read a completed verification
	// while writing an assignment.
	UoW interface {
		TxManager
		VerificationRepoFactory
		AssignmentRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
