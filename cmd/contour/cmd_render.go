package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/contourkit/contour"
	"github.com/contourkit/contour/raster"
)

func (a *app) svgCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Write contours as a standalone SVG document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := a.generate()
			if err != nil {
				return err
			}
			return a.writeOutput(cmd, output, func(w io.Writer) error {
				return contour.WriteDocument(w, a.cfg.Canvas.Width, a.cfg.Canvas.Height, cs, a.cfg.ContourStyle())
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")
	return cmd
}

func (a *app) pngCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "png",
		Short: "Rasterize contours into a PNG image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := a.generate()
			if err != nil {
				return err
			}
			w := int(math.Ceil(a.cfg.Canvas.Width))
			h := int(math.Ceil(a.cfg.Canvas.Height))
			return a.writeOutput(cmd, output, func(out io.Writer) error {
				return raster.WritePNG(out, cs, w, h, a.cfg.ContourStyle())
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "contours.png", "output file, - for stdout")
	return cmd
}

// pathRecord is the JSON form of one contour.
type pathRecord struct {
	D         string  `json:"d"`
	Major     bool    `json:"major"`
	Level     int     `json:"level"`
	Threshold float64 `json:"threshold"`
	Closed    bool    `json:"closed"`
	Points    int     `json:"points"`
}

func (a *app) pathsCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Write contours as JSON lines, one object per path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := a.generate()
			if err != nil {
				return err
			}
			return a.writeOutput(cmd, output, func(w io.Writer) error {
				enc := json.NewEncoder(w)
				for _, c := range cs {
					rec := pathRecord{
						D:         c.Data,
						Major:     c.Major,
						Level:     c.Level,
						Threshold: c.Threshold,
						Closed:    c.Closed,
						Points:    len(c.Points),
					}
					if err := enc.Encode(rec); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")
	return cmd
}

func (a *app) levelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the thresholds contours are traced at",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := a.cfg.NewGenerator()
			lvls, err := g.Levels(a.cfg.Canvas.Width, a.cfg.Canvas.Height, a.cfg.Canvas.Levels)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, l := range lvls {
				kind := "minor"
				if l.Major {
					kind = "major"
				}
				fmt.Fprintf(out, "%d\t%.6f\t%s\n", l.Index, l.Threshold, kind)
			}
			return nil
		},
	}
}

func (a *app) generate() ([]contour.Contour, error) {
	c := a.cfg.Canvas
	start := time.Now()
	cs, err := a.cfg.NewGenerator().Generate(c.Width, c.Height, c.Levels)
	if err != nil {
		return nil, err
	}
	a.logger.Info("Generated contours",
		zap.Float64("width", c.Width),
		zap.Float64("height", c.Height),
		zap.Int("levels", c.Levels),
		zap.Int("paths", len(cs)),
		zap.Duration("elapsed", time.Since(start)))
	return cs, nil
}

// writeOutput runs write against the named file, or the command's output when
// name is "-".
func (a *app) writeOutput(cmd *cobra.Command, name string, write func(io.Writer) error) error {
	if name == "-" || name == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	a.logger.Info("Wrote output", zap.String("path", name))
	return nil
}
