package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/airbusgeo/geokernel/internal/coordsys"
	"github.com/airbusgeo/geokernel/internal/log"
	"github.com/airbusgeo/geokernel/internal/utils"
	"github.com/airbusgeo/godal"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

var frames = coordsys.NewRegistry()

func main() {
	ctx := context.Background()
	app := cli.NewApp()
	app.Name = "geokernel"
	app.Usage = "extent conversions and barycentric coordinates"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "console",
			Usage: "human-readable logs",
		},
		cli.StringFlag{
			Name:   "loglevel",
			Value:  "",
			Usage:  "debug, info, warn, error",
			EnvVar: "LOGLEVEL",
		},
	}
	app.Version = "0.1.0"
	app.Before = func(c *cli.Context) error {
		if c.Bool("console") {
			return log.Console(c.String("loglevel"))
		}
		return log.Structured(c.String("loglevel"))
	}
	app.Commands = []cli.Command{
		{
			Name:    "extent",
			Aliases: []string{"e"},
			Usage:   "convert extents between coordinate reference systems",
			Subcommands: []cli.Command{
				{
					Name:        "convert",
					Usage:       "extent containing the conversion of the input extent",
					Action:      withContext(ctx, cliConvertExtent),
					Description: "ex: ./cmd/geokernel/geokernel extent convert --from epsg:4326 --to epsg:32631 --extent 2,48,4,50",
					Flags:       extentFlags,
				},
				{
					Name:        "approx",
					Usage:       "extent centered on the conversion of the center of the input extent, with the mean converted sizes",
					Action:      withContext(ctx, cliApproxExtent),
					Description: "ex: ./cmd/geokernel/geokernel extent approx --from epsg:4326 --to epsg:32631 --extent 2,48,4,50",
					Flags:       extentFlags,
				},
			},
		},
		{
			Name:    "bary",
			Aliases: []string{"b"},
			Usage:   "barycentric coordinates",
			Subcommands: []cli.Command{
				{
					Name:        "triangle",
					Usage:       "barycentric coordinates of a point relative to a triangle (2D or 3D)",
					Action:      withContext(ctx, cliBaryTriangle),
					Description: "ex: ./cmd/geokernel/geokernel bary triangle --point 1,1 --vertex 0,0 --vertex 4,0 --vertex 0,4",
					Flags: []cli.Flag{
						cli.StringFlag{Name: "point", Required: true, Usage: "format: x,y[,z]"},
						cli.StringSliceFlag{Name: "vertex", Required: true, Usage: "format: --vertex x,y[,z] (3 times)"},
						cli.Float64Flag{Name: "tolerance", Value: 0, Usage: "if > 0, also tests the inclusion of the point with this tolerance"},
					},
				},
				{
					Name:        "polygon",
					Usage:       "barycentric coordinates of a point relative to a convex polygon (2D or 3D)",
					Action:      withContext(ctx, cliBaryPolygon),
					Description: "ex: ./cmd/geokernel/geokernel bary polygon --point 0.5,0.5 --vertex 0,0 --vertex 1,0 --vertex 1,1 --vertex 0,1",
					Flags: []cli.Flag{
						cli.StringFlag{Name: "point", Required: true, Usage: "format: x,y[,z]"},
						cli.StringSliceFlag{Name: "vertex", Required: true, Usage: "format: --vertex x,y[,z] (at least 3 times)"},
					},
				},
				{
					Name:        "closest",
					Usage:       "point of a 3D triangle closest to a point",
					Action:      withContext(ctx, cliBaryClosest),
					Description: "ex: ./cmd/geokernel/geokernel bary closest --point 2,-1,5 --vertex 0,0,0 --vertex 4,0,0 --vertex 0,4,0 --split",
					Flags: []cli.Flag{
						cli.StringFlag{Name: "point", Required: true, Usage: "format: x,y,z"},
						cli.StringSliceFlag{Name: "vertex", Required: true, Usage: "format: --vertex x,y,z (3 times)"},
						cli.BoolFlag{Name: "split", Usage: "also split the triangle around the closest point"},
					},
				},
			},
		},
	}

	godal.RegisterAll()
	if err := app.Run(os.Args); err != nil {
		log.Logger(ctx).Fatal("geokernel", zap.Error(err))
	}
}

func withContext(ctx context.Context, action func(context.Context, *cli.Context) error) func(*cli.Context) error {
	return func(c *cli.Context) (err error) {
		defer utils.RecoverPrecondition(&err)
		return action(log.With(ctx, "command", c.Command.FullName()), c)
	}
}

func printJSON(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("printJSON.%w", err)
	}
	fmt.Println(string(b))
	return nil
}
