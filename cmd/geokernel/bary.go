package main

import (
	"context"
	"fmt"

	"github.com/airbusgeo/geokernel/internal/barycentric"
	"github.com/airbusgeo/geokernel/internal/log"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

type baryOutput struct {
	Coords []float64 `json:"coords"`
	OK     bool      `json:"ok"`
	Area   *float64  `json:"area,omitempty"`
	Inside *bool     `json:"inside,omitempty"`
}

func cliBaryTriangle(ctx context.Context, c *cli.Context) error {
	vertices := c.StringSlice("vertex")
	if len(vertices) != 3 {
		return fmt.Errorf("cliBaryTriangle: expecting 3 vertices, got %d", len(vertices))
	}
	p2, p3, err := parsePoints(append([]string{c.String("point")}, vertices...)...)
	if err != nil {
		return fmt.Errorf("cliBaryTriangle.%w", err)
	}
	var out baryOutput
	if p2 != nil {
		b, area, ok := barycentric.FromTriangle2DVertices(p2[0], p2[1], p2[2], p2[3])
		out = baryOutput{Coords: b[:], OK: ok, Area: &area}
		if tol := c.Float64("tolerance"); tol > 0 {
			_, inside := barycentric.InTriangle2D(p2[0], p2[1], p2[2], p2[3], tol)
			out.Inside = &inside
		}
	} else {
		b, ok := barycentric.FromTriangle3DVertices(p3[0], p3[1], p3[2], p3[3])
		out = baryOutput{Coords: b[:], OK: ok}
		if tol := c.Float64("tolerance"); tol > 0 {
			_, _, inside := barycentric.InTrianglePrism(p3[0], p3[1], p3[2], p3[3], tol)
			out.Inside = &inside
		}
	}
	if !out.OK {
		log.Logger(ctx).Debug("degenerate triangle", zap.Strings("vertices", vertices))
	}
	return printJSON(out)
}

func cliBaryPolygon(ctx context.Context, c *cli.Context) error {
	vertices := c.StringSlice("vertex")
	if len(vertices) < 3 {
		return fmt.Errorf("cliBaryPolygon: expecting at least 3 vertices, got %d", len(vertices))
	}
	p2, p3, err := parsePoints(append([]string{c.String("point")}, vertices...)...)
	if err != nil {
		return fmt.Errorf("cliBaryPolygon.%w", err)
	}
	var out baryOutput
	if p2 != nil {
		out.Coords, out.OK = barycentric.FromConvexPolygon(p2[0], p2[1:])
	} else {
		out.Coords, out.OK = barycentric.FromConvexPolygon3D(p3[0], p3[1:])
	}
	if !out.OK {
		log.Logger(ctx).Debug("degenerate polygon", zap.Strings("vertices", vertices))
	}
	return printJSON(out)
}

type closestOutput struct {
	Point     r3.Vec                 `json:"point"`
	Distance  float64                `json:"distance"`
	Coords    []float64              `json:"coords"`
	Unbounded []float64              `json:"unbounded"`
	OK        bool                   `json:"ok"`
	Split     []barycentric.Triangle `json:"split,omitempty"`
}

func cliBaryClosest(ctx context.Context, c *cli.Context) error {
	vertices := c.StringSlice("vertex")
	if len(vertices) != 3 {
		return fmt.Errorf("cliBaryClosest: expecting 3 vertices, got %d", len(vertices))
	}
	_, p3, err := parsePoints(append([]string{c.String("point")}, vertices...)...)
	if err != nil {
		return fmt.Errorf("cliBaryClosest.%w", err)
	}
	if p3 == nil {
		return fmt.Errorf("cliBaryClosest: expecting 3D points")
	}
	closest, ok := barycentric.MinDistToTriangle(p3[0], p3[1], p3[2], p3[3])
	out := closestOutput{
		Point:     closest.Point,
		Distance:  closest.Distance,
		Coords:    closest.Coords[:],
		Unbounded: closest.Unbounded[:],
		OK:        ok,
	}
	if c.Bool("split") {
		if out.Split, ok = barycentric.SplitForIntegration(p3[0], p3[1], p3[2], p3[3]); !ok {
			log.Logger(ctx).Debug("cannot split a flat triangle", zap.Strings("vertices", vertices))
		}
	}
	return printJSON(out)
}
