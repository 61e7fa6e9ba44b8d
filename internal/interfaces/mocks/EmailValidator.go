package mocks

import mock "github.com/stretchr/testify/mock"

// MockEmailValidator is a mock type for the EmailValidator type
type MockEmailValidator struct {
	mock.Mock
}

// IsValid provides a mock function with given fields: email
func (_m *MockEmailValidator) IsValid(email string) (bool, error) {
	ret := _m.Called(email)

	if len(ret) == 0 {
		panic("no return value specified for IsValid")
	}

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (bool, error)); ok {
		return rf(email)
	}
	if rf, ok := ret.Get(0).(func(string) bool); ok {
		r0 = rf(email)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(email)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockEmailValidator creates a new instance of MockEmailValidator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockEmailValidator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEmailValidator {
	m := &MockEmailValidator{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
