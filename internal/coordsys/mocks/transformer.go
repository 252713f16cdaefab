package mocks

import (
	"github.com/airbusgeo/geokernel/internal/coordsys"
	"github.com/stretchr/testify/mock"
)

type Transformer struct {
	mock.Mock
}

func (_m *Transformer) TransformBetween(from, to *coordsys.CoordSys) (coordsys.Transform, error) {
	ret := _m.Called(from, to)

	var r0 coordsys.Transform
	if rf, ok := ret.Get(0).(func(*coordsys.CoordSys, *coordsys.CoordSys) coordsys.Transform); ok {
		r0 = rf(from, to)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(coordsys.Transform)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(*coordsys.CoordSys, *coordsys.CoordSys) error); ok {
		r1 = rf(from, to)
	} else {
		r1 = ret.Error(1)
	}
	return r0, r1
}

type Transform struct {
	mock.Mock
}

func (_m *Transform) Transform(x, y float64) (float64, float64, error) {
	ret := _m.Called(x, y)
	if rf, ok := ret.Get(0).(func(float64, float64) (float64, float64, error)); ok {
		return rf(x, y)
	}
	return ret.Get(0).(float64), ret.Get(1).(float64), ret.Error(2)
}

func (_m *Transform) TransformFlat(flat []float64) error {
	ret := _m.Called(flat)
	var r0 error
	if rf, ok := ret.Get(0).(func([]float64) error); ok {
		r0 = rf(flat)
	} else {
		r0 = ret.Error(0)
	}
	return r0
}

func (_m *Transform) PreservesLinearity() bool {
	ret := _m.Called()
	return ret.Bool(0)
}

func (_m *Transform) IsIdentity() bool {
	ret := _m.Called()
	return ret.Bool(0)
}
