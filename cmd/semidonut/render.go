// seehuhn.de/go/semidonut - semi-circular ring charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seehuhn.de/go/semidonut"
	"seehuhn.de/go/semidonut/dashboard"
	"seehuhn.de/go/semidonut/pdfchart"
	"seehuhn.de/go/semidonut/raster"
	"seehuhn.de/go/semidonut/svg"
)

// formats lists the supported output formats.
var formats = []string{"svg", "pdf", "png"}

func (a *app) renderCmd() *cobra.Command {
	var dataFile, format, out string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the story status chart",
		Long: `Render the story status chart of a user.  Without --data the
built-in sample user is drawn.  The output format is taken from --format,
or else from the extension of --out, and defaults to SVG.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.loadData(dataFile)
			if err != nil {
				return err
			}
			chart, err := a.storyChart(data)
			if err != nil {
				return err
			}

			format, err := resolveFormat(format, out)
			if err != nil {
				return err
			}
			a.log.Debug("rendering chart",
				zap.String("format", format),
				zap.String("out", out),
				zap.Int("segments", len(chart.Segments)))

			if out == "" || out == "-" {
				return a.writeChart(cmd.OutOrStdout(), chart, format)
			}
			return a.writeFile(out, chart, format)
		},
	}
	cmd.Flags().StringVarP(&dataFile, "data", "d", "", "YAML file with user data (default: built-in sample)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: svg, pdf or png")
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, \"-\" for stdout")
	return cmd
}

func (a *app) legendCmd() *cobra.Command {
	var dataFile string
	cmd := &cobra.Command{
		Use:   "legend",
		Short: "Print the chart legend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.loadData(dataFile)
			if err != nil {
				return err
			}
			chart, err := a.storyChart(data)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, e := range chart.Legend {
				fmt.Fprintf(w, "%s\t%s\n", e.Color, e)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&dataFile, "data", "d", "", "YAML file with user data (default: built-in sample)")
	return cmd
}

func (a *app) metricsCmd() *cobra.Command {
	var dataFile string
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Print integration status and derived productivity metrics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.loadData(dataFile)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			integrations := []struct{ name, status string }{
				{"GitHub", data.GitHubStatus},
				{"Copilot", data.CopilotStatus},
				{"Jira", data.JiraStatus},
			}
			for _, in := range integrations {
				fmt.Fprintf(tw, "%s status\t%s\t%s\n", in.name, in.status, dashboard.StatusColor(in.status))
			}
			for _, row := range dashboard.Derive(data).Rows() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", row.Name, row.Value, row.Unit)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&dataFile, "data", "d", "", "YAML file with user data (default: built-in sample)")
	return cmd
}

// loadData reads the user data from the named file, or returns the sample
// user if name is empty.
func (a *app) loadData(name string) (dashboard.UserData, error) {
	if name == "" {
		return dashboard.Sample(), nil
	}
	fd, err := os.Open(name)
	if err != nil {
		return dashboard.UserData{}, err
	}
	defer fd.Close()

	data, err := dashboard.Load(fd)
	if err != nil {
		return data, fmt.Errorf("%s: %w", name, err)
	}
	a.log.Info("loaded user data", zap.String("file", name), zap.Int("statuses", len(data.Stories)))
	return data, nil
}

// storyChart lays out the story status chart using the configured geometry.
func (a *app) storyChart(data dashboard.UserData) (*semidonut.Chart, error) {
	in := dashboard.StoryChart(data, a.cfg.Chart.Radius)
	in.InnerRatio = a.cfg.Chart.InnerRatio
	chart, err := semidonut.NewChart(in)
	if err != nil {
		return nil, err
	}
	if len(chart.Segments) == 0 {
		a.log.Warn("chart has no segments", zap.Float64("total", in.TotalValue))
	}
	return chart, nil
}

func (a *app) writeChart(w io.Writer, chart *semidonut.Chart, format string) error {
	th := a.cfg.ChartTheme()
	switch format {
	case "svg":
		return svg.Formatter{Precision: a.cfg.SVG.Precision}.Write(w, chart, th)
	case "pdf":
		return pdfchart.Write(w, chart, th)
	case "png":
		return raster.WritePNG(w, chart, th)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func (a *app) writeFile(name string, chart *semidonut.Chart, format string) error {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	err = a.writeChart(fd, chart, format)
	err2 := fd.Close()
	if err == nil {
		err = err2
	}
	if err != nil {
		return err
	}
	a.log.Info("chart written", zap.String("file", name), zap.String("format", format))
	return nil
}

// resolveFormat determines the output format from the --format flag and the
// output file name.
func resolveFormat(format, out string) (string, error) {
	if format == "" && out != "" && out != "-" {
		format = strings.TrimPrefix(filepath.Ext(out), ".")
	}
	if format == "" {
		return "svg", nil
	}
	format = strings.ToLower(format)
	for _, f := range formats {
		if f == format {
			return format, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q", format)
}
