package mocks

import (
	context "context"

	interfaces "github.com/haguru/signup/internal/interfaces"
	mock "github.com/stretchr/testify/mock"
)

// MockDBClient is a mock type for the DBClient type
type MockDBClient struct {
	mock.Mock
}

// Connect provides a mock function with given fields: ctx, dsn
func (_m *MockDBClient) Connect(ctx context.Context, dsn string) error {
	ret := _m.Called(ctx, dsn)

	if len(ret) == 0 {
		panic("no return value specified for Connect")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string) error); ok {
		r0 = rf(ctx, dsn)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Disconnect provides a mock function with given fields: ctx
func (_m *MockDBClient) Disconnect(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Disconnect")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// EnsureSchema provides a mock function with given fields: ctx, collectionName, schema
func (_m *MockDBClient) EnsureSchema(ctx context.Context, collectionName string, schema interfaces.Document) error {
	ret := _m.Called(ctx, collectionName, schema)

	if len(ret) == 0 {
		panic("no return value specified for EnsureSchema")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, interfaces.Document) error); ok {
		r0 = rf(ctx, collectionName, schema)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindMany provides a mock function with given fields: ctx, collectionName, filter
func (_m *MockDBClient) FindMany(ctx context.Context, collectionName string, filter interfaces.Document) ([]interfaces.Document, error) {
	ret := _m.Called(ctx, collectionName, filter)

	if len(ret) == 0 {
		panic("no return value specified for FindMany")
	}

	var r0 []interfaces.Document
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, interfaces.Document) ([]interfaces.Document, error)); ok {
		return rf(ctx, collectionName, filter)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, interfaces.Document) []interfaces.Document); ok {
		r0 = rf(ctx, collectionName, filter)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]interfaces.Document)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, interfaces.Document) error); ok {
		r1 = rf(ctx, collectionName, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindOne provides a mock function with given fields: ctx, collectionName, filter, result
func (_m *MockDBClient) FindOne(ctx context.Context, collectionName string, filter interfaces.Document, result interfaces.Document) error {
	ret := _m.Called(ctx, collectionName, filter, result)

	if len(ret) == 0 {
		panic("no return value specified for FindOne")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, interfaces.Document, interfaces.Document) error); ok {
		r0 = rf(ctx, collectionName, filter, result)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// InsertOne provides a mock function with given fields: ctx, collectionName, document
func (_m *MockDBClient) InsertOne(ctx context.Context, collectionName string, document interfaces.Document) (interface{}, error) {
	ret := _m.Called(ctx, collectionName, document)

	if len(ret) == 0 {
		panic("no return value specified for InsertOne")
	}

	var r0 interface{}
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string, interfaces.Document) (interface{}, error)); ok {
		return rf(ctx, collectionName, document)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string, interfaces.Document) interface{}); ok {
		r0 = rf(ctx, collectionName, document)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(interface{})
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, string, interfaces.Document) error); ok {
		r1 = rf(ctx, collectionName, document)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Ping provides a mock function with given fields: ctx
func (_m *MockDBClient) Ping(ctx context.Context) error {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for Ping")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context) error); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockDBClient creates a new instance of MockDBClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockDBClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockDBClient {
	m := &MockDBClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
