package mocks

import (
	context "context"

	models "github.com/haguru/signup/internal/models"
	mock "github.com/stretchr/testify/mock"
)

// MockAddAccountRepository is a mock type for the AddAccountRepository type
type MockAddAccountRepository struct {
	mock.Mock
}

// Add provides a mock function with given fields: ctx, account
func (_m *MockAddAccountRepository) Add(ctx context.Context, account models.AddAccountModel) (*models.AccountModel, error) {
	ret := _m.Called(ctx, account)

	if len(ret) == 0 {
		panic("no return value specified for Add")
	}

	var r0 *models.AccountModel
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, models.AddAccountModel) (*models.AccountModel, error)); ok {
		return rf(ctx, account)
	}
	if rf, ok := ret.Get(0).(func(context.Context, models.AddAccountModel) *models.AccountModel); ok {
		r0 = rf(ctx, account)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.AccountModel)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, models.AddAccountModel) error); ok {
		r1 = rf(ctx, account)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockAddAccountRepository creates a new instance of MockAddAccountRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAddAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAddAccountRepository {
	m := &MockAddAccountRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
