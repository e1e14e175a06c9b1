// Hand-written in mockery layout. Update it alongside service.HashEngine.

package service

import (
	"hashsvc/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockHashEngine is a mock type for the HashEngine type
type MockHashEngine struct {
	mock.Mock
}

type MockHashEngine_Expecter struct {
	mock *mock.Mock
}

func (_m *MockHashEngine) EXPECT() *MockHashEngine_Expecter {
	return &MockHashEngine_Expecter{mock: &_m.Mock}
}

// Algorithms provides a mock function with no fields
func (_m *MockHashEngine) Algorithms() []entity.AlgorithmInfo {
	ret := _m.Called()

	if len(ret) == 0 {
		panic("no return value specified for Algorithms")
	}

	var r0 []entity.AlgorithmInfo
	if rf, ok := ret.Get(0).(func() []entity.AlgorithmInfo); ok {
		r0 = rf()
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]entity.AlgorithmInfo)
	}

	return r0
}

// MockHashEngine_Algorithms_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Algorithms'
type MockHashEngine_Algorithms_Call struct {
	*mock.Call
}

// Algorithms is a helper method to define mock.On call
func (_e *MockHashEngine_Expecter) Algorithms() *MockHashEngine_Algorithms_Call {
	return &MockHashEngine_Algorithms_Call{Call: _e.mock.On("Algorithms")}
}

func (_c *MockHashEngine_Algorithms_Call) Run(run func()) *MockHashEngine_Algorithms_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run()
	})
	return _c
}

func (_c *MockHashEngine_Algorithms_Call) Return(_a0 []entity.AlgorithmInfo) *MockHashEngine_Algorithms_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockHashEngine_Algorithms_Call) RunAndReturn(run func() []entity.AlgorithmInfo) *MockHashEngine_Algorithms_Call {
	_c.Call.Return(run)
	return _c
}

// Compute provides a mock function with given fields: plainText, spec
func (_m *MockHashEngine) Compute(plainText string, spec entity.HashSpec) (string, error) {
	ret := _m.Called(plainText, spec)

	if len(ret) == 0 {
		panic("no return value specified for Compute")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(string, entity.HashSpec) (string, error)); ok {
		return rf(plainText, spec)
	}
	if rf, ok := ret.Get(0).(func(string, entity.HashSpec) string); ok {
		r0 = rf(plainText, spec)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(string, entity.HashSpec) error); ok {
		r1 = rf(plainText, spec)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockHashEngine_Compute_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Compute'
type MockHashEngine_Compute_Call struct {
	*mock.Call
}

// Compute is a helper method to define mock.On call
//   - plainText string
//   - spec entity.HashSpec
func (_e *MockHashEngine_Expecter) Compute(plainText interface{}, spec interface{}) *MockHashEngine_Compute_Call {
	return &MockHashEngine_Compute_Call{Call: _e.mock.On("Compute", plainText, spec)}
}

func (_c *MockHashEngine_Compute_Call) Run(run func(plainText string, spec entity.HashSpec)) *MockHashEngine_Compute_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(entity.HashSpec))
	})
	return _c
}

func (_c *MockHashEngine_Compute_Call) Return(_a0 string, _a1 error) *MockHashEngine_Compute_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockHashEngine_Compute_Call) RunAndReturn(run func(string, entity.HashSpec) (string, error)) *MockHashEngine_Compute_Call {
	_c.Call.Return(run)
	return _c
}

// Inspect provides a mock function with given fields: artifact
func (_m *MockHashEngine) Inspect(artifact string) (entity.ArtifactInfo, error) {
	ret := _m.Called(artifact)

	if len(ret) == 0 {
		panic("no return value specified for Inspect")
	}

	var r0 entity.ArtifactInfo
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (entity.ArtifactInfo, error)); ok {
		return rf(artifact)
	}
	if rf, ok := ret.Get(0).(func(string) entity.ArtifactInfo); ok {
		r0 = rf(artifact)
	} else {
		r0 = ret.Get(0).(entity.ArtifactInfo)
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(artifact)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockHashEngine_Inspect_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Inspect'
type MockHashEngine_Inspect_Call struct {
	*mock.Call
}

// Inspect is a helper method to define mock.On call
//   - artifact string
func (_e *MockHashEngine_Expecter) Inspect(artifact interface{}) *MockHashEngine_Inspect_Call {
	return &MockHashEngine_Inspect_Call{Call: _e.mock.On("Inspect", artifact)}
}

func (_c *MockHashEngine_Inspect_Call) Run(run func(artifact string)) *MockHashEngine_Inspect_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})
	return _c
}

func (_c *MockHashEngine_Inspect_Call) Return(_a0 entity.ArtifactInfo, _a1 error) *MockHashEngine_Inspect_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockHashEngine_Inspect_Call) RunAndReturn(run func(string) (entity.ArtifactInfo, error)) *MockHashEngine_Inspect_Call {
	_c.Call.Return(run)
	return _c
}

// Verify provides a mock function with given fields: plainText, artifact
func (_m *MockHashEngine) Verify(plainText string, artifact string) (bool, error) {
	ret := _m.Called(plainText, artifact)

	if len(ret) == 0 {
		panic("no return value specified for Verify")
	}

	var r0 bool
	var r1 error
	if rf, ok := ret.Get(0).(func(string, string) (bool, error)); ok {
		return rf(plainText, artifact)
	}
	if rf, ok := ret.Get(0).(func(string, string) bool); ok {
		r0 = rf(plainText, artifact)
	} else {
		r0 = ret.Get(0).(bool)
	}

	if rf, ok := ret.Get(1).(func(string, string) error); ok {
		r1 = rf(plainText, artifact)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockHashEngine_Verify_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Verify'
type MockHashEngine_Verify_Call struct {
	*mock.Call
}

// Verify is a helper method to define mock.On call
//   - plainText string
//   - artifact string
func (_e *MockHashEngine_Expecter) Verify(plainText interface{}, artifact interface{}) *MockHashEngine_Verify_Call {
	return &MockHashEngine_Verify_Call{Call: _e.mock.On("Verify", plainText, artifact)}
}

func (_c *MockHashEngine_Verify_Call) Run(run func(plainText string, artifact string)) *MockHashEngine_Verify_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(string))
	})
	return _c
}

func (_c *MockHashEngine_Verify_Call) Return(_a0 bool, _a1 error) *MockHashEngine_Verify_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockHashEngine_Verify_Call) RunAndReturn(run func(string, string) (bool, error)) *MockHashEngine_Verify_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockHashEngine creates a new instance of MockHashEngine. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockHashEngine(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHashEngine {
	mock := &MockHashEngine{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
