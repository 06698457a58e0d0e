package commands_test

import (
	"errors"
	"regexp"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPhone = kernel.Phone("+201001234567")

func TestRandomOTPCode_SixDigits(t *testing.T) {
	pattern := regexp.MustCompile(`^\d{6}$`)
	for range 50 {
		code, err := commands.RandomOTPCode()
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
	}
}

func TestRequestOTPCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRequestOTPCommand("+20 100 123 4567")
	require.NoError(t, err)

	store := new(MockOTPStore)
	sender := new(MockOTPSender)
	mock.InOrder(
		store.On("SaveCode", ctx, testPhone, "123456", commands.OTPTTL).Return(nil).Once(),
		sender.On("Send", ctx, testPhone, "123456").Return(nil).Once(),
	)

	h := commands.NewRequestOTPCommandHandler(store, sender,
		func() (string, error) { return "123456", nil }, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	store.AssertExpectations(t)
	sender.AssertExpectations(t)
}

func TestRequestOTPCommandHandler_Handle_StoreError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRequestOTPCommand("+201001234567")

	store := new(MockOTPStore)
	sender := new(MockOTPSender)
	store.On("SaveCode", ctx, testPhone, mock.Anything, commands.OTPTTL).Return(errors.New("redis down")).Once()

	h := commands.NewRequestOTPCommandHandler(store, sender, commands.RandomOTPCode, discardLogger())
	require.Error(t, h.Handle(ctx, cmd))
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}

func TestNewRequestOTPCommand_InvalidPhone(t *testing.T) {
	_, err := commands.NewRequestOTPCommand("12ab")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestVerifyOTPCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewVerifyOTPCommand("+201001234567", " 123456 ")
	require.NoError(t, err)
	assert.Equal(t, "123456", cmd.Code())

	store := new(MockOTPStore)
	mock.InOrder(
		store.On("ConsumeCode", ctx, testPhone, "123456").Return(true, nil).Once(),
		store.On("MarkVerified", ctx, testPhone, commands.VerifiedTTL).Return(nil).Once(),
	)

	h := commands.NewVerifyOTPCommandHandler(store, discardLogger())
	require.NoError(t, h.Handle(ctx, cmd))
	store.AssertExpectations(t)
}

func TestVerifyOTPCommandHandler_Handle_Mismatch(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewVerifyOTPCommand("+201001234567", "000000")

	store := new(MockOTPStore)
	store.On("ConsumeCode", ctx, testPhone, "000000").Return(false, nil).Once()

	h := commands.NewVerifyOTPCommandHandler(store, discardLogger())
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	store.AssertNotCalled(t, "MarkVerified", mock.Anything, mock.Anything, mock.Anything)
}

func TestNewVerifyOTPCommand_MissingCode(t *testing.T) {
	_, err := commands.NewVerifyOTPCommand("+201001234567", "  ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCompleteProfileCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCompleteProfileCommand("+201001234567", "Mona", "12 Nile St")
	require.NoError(t, err)
	stored := storedCustomer(t)

	store := new(MockOTPStore)
	customers := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		store.On("IsVerified", ctx, testPhone).Return(true, nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customers).Once(),
		customers.On("Upsert", ctx, mock.MatchedBy(func(c *customer.Customer) bool {
			return c.PhoneVerified() && c.Name() == "Mona" && c.Address() == "12 Nile St"
		})).Return(stored, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteProfileCommandHandler(store, factory)
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Same(t, stored, got)
	store.AssertExpectations(t)
	customers.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteProfileCommandHandler_Handle_NotVerified(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCompleteProfileCommand("+201001234567", "Mona", "")

	store := new(MockOTPStore)
	store.On("IsVerified", ctx, testPhone).Return(false, nil).Once()
	factory := new(MockCustomerUoWFactory)

	h := commands.NewCompleteProfileCommandHandler(store, factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCompleteProfileCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewCompleteProfileCommand("", " ", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
