package commands_test

import (
	"testing"

	"cargopay/internal/core/application/usecases/commands"
	"cargopay/internal/core/domain/model/assignment"
	"cargopay/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewIdentifyDriverCommand_Validation(t *testing.T) {
	_, err := commands.NewIdentifyDriverCommand("", "Ahmed K.", "+971509876543")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewIdentifyDriverCommand("CODE2345", "", "+971509876543")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewIdentifyDriverCommand("CODE2345", "Ahmed K.", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestIdentifyDriverCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	a := pendingAssignment(t, "CODE2345")
	cmd, err := commands.NewIdentifyDriverCommand("CODE2345", "Ahmed K.", "+971509876543")
	require.NoError(t, err)

	repo := new(MockAssignmentRepository)
	uow := new(MockAssignmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(repo).Once(),
		repo.On("GetByAccessCode", mock.Anything, "CODE2345").Return(a, nil).Once(),
		repo.On("SaveDriverIdentity", mock.Anything, a).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewIdentifyDriverCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, a.HasDriver())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestIdentifyDriverCommandHandler_Handle_DifferentIdentityConflicts(t *testing.T) {
	ctx := t.Context()
	a := identifiedAssignment(t, "CODE2345")
	cmd, err := commands.NewIdentifyDriverCommand("CODE2345", "Someone Else", "+971500000000")
	require.NoError(t, err)

	repo := new(MockAssignmentRepository)
	uow := new(MockAssignmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(repo).Once(),
		repo.On("GetByAccessCode", mock.Anything, "CODE2345").Return(a, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewIdentifyDriverCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	require.ErrorIs(t, err, assignment.ErrDriverIdentityLocked)
	assert.Equal(t, "Ahmed K.", a.Driver().Name())
	repo.AssertExpectations(t)
}

func TestIdentifyDriverCommandHandler_Handle_UnknownCode(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewIdentifyDriverCommand("UNKNOWN9", "Ahmed K.", "+971509876543")
	require.NoError(t, err)

	repo := new(MockAssignmentRepository)
	uow := new(MockAssignmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(repo).Once(),
		repo.On("GetByAccessCode", mock.Anything, "UNKNOWN9").
			Return(nil, errs.NewObjectNotFoundError("accessCode", "UNKNOWN9")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewIdentifyDriverCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
