package main

import (
	"fmt"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// parseFloats parses "v1,v2,...,vn" and checks that n is one of sizes
func parseFloats(s string, sizes ...int) ([]float64, error) {
	parts := strings.Split(s, ",")
	values := make([]float64, len(parts))
	for i, p := range parts {
		var err error
		if values[i], err = strconv.ParseFloat(strings.TrimSpace(p), 64); err != nil {
			return nil, fmt.Errorf("parseFloats(%s).%w", s, err)
		}
	}
	for _, n := range sizes {
		if len(values) == n {
			return values, nil
		}
	}
	return nil, fmt.Errorf("parseFloats(%s): expecting %v values", s, sizes)
}

// parsePoints parses a list of points that must all be 2D or all be 3D
func parsePoints(points ...string) ([]r2.Vec, []r3.Vec, error) {
	var p2 []r2.Vec
	var p3 []r3.Vec
	dim := 0
	for _, s := range points {
		values, err := parseFloats(s, 2, 3)
		if err != nil {
			return nil, nil, err
		}
		if dim == 0 {
			dim = len(values)
		} else if dim != len(values) {
			return nil, nil, fmt.Errorf("parsePoints: mixing 2D and 3D points")
		}
		if dim == 2 {
			p2 = append(p2, r2.Vec{X: values[0], Y: values[1]})
		} else {
			p3 = append(p3, r3.Vec{X: values[0], Y: values[1], Z: values[2]})
		}
	}
	return p2, p3, nil
}
