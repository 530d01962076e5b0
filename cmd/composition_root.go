package cmd

import (
	"cargopay/internal/adapters/out/postgres"
	"cargopay/internal/adapters/out/postgres/proofrepo"
	"cargopay/internal/core/application/usecases/commands"
	"cargopay/internal/core/application/usecases/queries"
	"cargopay/internal/core/domain/model/rates"
	"cargopay/internal/core/domain/model/verification"
	"cargopay/internal/core/domain/services"

	"gorm.io/gorm"
)

// CompositionRoot wires the application together: one unit-of-work
// factory over the shared connection, one pricer over the default rate
// table, and factory methods producing fully wired handlers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	pricer     verification.Pricer
}

// NewCompositionRoot creates the composition root over an open database
// connection. Fails if the built-in rate table is malformed.
func NewCompositionRoot(gormDB *gorm.DB) (CompositionRoot, error) {
	resolver, err := services.NewRateResolver(rates.DefaultTable())
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		pricer:     resolver,
	}, nil
}

func (c *CompositionRoot) CreateOpenVerificationCommandHandler() commands.OpenVerificationCommandHandler {
	var f commands.VerificationUoWFactory = FuncVerificationUoWFactory(func() commands.VerificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewOpenVerificationCommandHandler(f, c.pricer)
}

func (c *CompositionRoot) CreateUpdateVerificationCommandHandler() commands.UpdateVerificationCommandHandler {
	var f commands.VerificationUoWFactory = FuncVerificationUoWFactory(func() commands.VerificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateVerificationCommandHandler(f, c.pricer)
}

func (c *CompositionRoot) CreateCompleteVerificationCommandHandler() commands.CompleteVerificationCommandHandler {
	var f commands.VerificationUoWFactory = FuncVerificationUoWFactory(func() commands.VerificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteVerificationCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateAssignmentCommandHandler() commands.CreateAssignmentCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateAssignmentCommandHandler(f)
}

func (c *CompositionRoot) CreateIdentifyDriverCommandHandler() commands.IdentifyDriverCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewIdentifyDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f, proofrepo.NewGormProofStorage(c.gormDB))
}

func (c *CompositionRoot) CreateExpireAccessCodesCommandHandler() commands.ExpireAccessCodesCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewExpireAccessCodesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCollectionByCodeQueryHandler() queries.GetCollectionByCodeQueryHandler {
	return queries.NewGetCollectionByCodeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingCollectionsQueryHandler() queries.GetPendingCollectionsQueryHandler {
	return queries.NewGetPendingCollectionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetVerificationQueryHandler() queries.GetVerificationQueryHandler {
	return queries.NewGetVerificationQueryHandler(c.gormDB)
}

type FuncVerificationUoWFactory func() commands.VerificationUoW

func (f FuncVerificationUoWFactory) Create() commands.VerificationUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
