package mocks

import (
	context "context"

	dto "github.com/haguru/signup/internal/models/dto"
	mock "github.com/stretchr/testify/mock"
)

// MockController is a mock type for the Controller type
type MockController struct {
	mock.Mock
}

// Handle provides a mock function with given fields: ctx, request
func (_m *MockController) Handle(ctx context.Context, request dto.HttpRequest) dto.HttpResponse {
	ret := _m.Called(ctx, request)

	if len(ret) == 0 {
		panic("no return value specified for Handle")
	}

	var r0 dto.HttpResponse
	if rf, ok := ret.Get(0).(func(context.Context, dto.HttpRequest) dto.HttpResponse); ok {
		r0 = rf(ctx, request)
	} else {
		r0 = ret.Get(0).(dto.HttpResponse)
	}

	return r0
}

// NewMockController creates a new instance of MockController. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockController(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockController {
	m := &MockController{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
