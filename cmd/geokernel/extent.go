package main

import (
	"context"
	"fmt"

	"github.com/airbusgeo/geokernel/internal/coordsys"
	"github.com/airbusgeo/geokernel/internal/extent"
	"github.com/airbusgeo/geokernel/internal/log"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var extentFlags = []cli.Flag{
	cli.StringFlag{Name: "from", Required: true, Usage: "crs of the input extent (epsg:code, proj4 or wkt)"},
	cli.StringFlag{Name: "to", Required: true, Usage: "crs of the output extent (epsg:code, proj4 or wkt)"},
	cli.StringFlag{Name: "extent", Required: true, Usage: "format: xmin,ymin,xmax,ymax"},
}

type extentOutput struct {
	CRS  string  `json:"crs"`
	XMin float64 `json:"xmin"`
	YMin float64 `json:"ymin"`
	XMax float64 `json:"xmax"`
	YMax float64 `json:"ymax"`
}

func newExtentOutput(e *extent.Extent) extentOutput {
	return extentOutput{
		CRS:  e.CoordSys().Name(),
		XMin: e.XMin(),
		YMin: e.YMin(),
		XMax: e.XMax(),
		YMax: e.YMax(),
	}
}

// internCRS returns the frame of the crs, created at first use
func internCRS(ctx context.Context, crs string) (*coordsys.CoordSys, error) {
	return frames.Intern(ctx, crs, func() (*coordsys.CoordSys, error) {
		return coordsys.NewFromCRS(crs, crs)
	})
}

func parseExtent(ctx context.Context, c *cli.Context) (*extent.Extent, *coordsys.CoordSys, error) {
	from, err := internCRS(ctx, c.String("from"))
	if err != nil {
		return nil, nil, fmt.Errorf("parseExtent.%w", err)
	}
	to, err := internCRS(ctx, c.String("to"))
	if err != nil {
		return nil, nil, fmt.Errorf("parseExtent.%w", err)
	}
	v, err := parseFloats(c.String("extent"), 4)
	if err != nil {
		return nil, nil, fmt.Errorf("parseExtent.%w", err)
	}
	if v[0] > v[2] || v[1] > v[3] {
		return nil, nil, fmt.Errorf("parseExtent: min greater than max in %v", v)
	}
	return extent.NewExtentFromMinMax(v[0], v[1], v[2], v[3], from), to, nil
}

func cliConvertExtent(ctx context.Context, c *cli.Context) error {
	e, to, err := parseExtent(ctx, c)
	if err != nil {
		return err
	}
	log.Logger(ctx).Debug("converting", zap.Stringer("extent", e))
	if err := e.ChangeCoordSys(to); err != nil {
		return fmt.Errorf("cliConvertExtent.%w", err)
	}
	return printJSON(newExtentOutput(e))
}

func cliApproxExtent(ctx context.Context, c *cli.Context) error {
	e, to, err := parseExtent(ctx, c)
	if err != nil {
		return err
	}
	log.Logger(ctx).Debug("converting", zap.Stringer("extent", e))
	approx, err := e.CalculateApproxExtentIn(to)
	if err != nil {
		return fmt.Errorf("cliApproxExtent.%w", err)
	}
	return printJSON(newExtentOutput(approx))
}
