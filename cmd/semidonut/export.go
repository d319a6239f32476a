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
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/semidonut"
	"seehuhn.de/go/semidonut/testcases"
)

func (a *app) exportCmd() *cobra.Command {
	var jobs int
	cmd := &cobra.Command{
		Use:   "export DIR",
		Short: "Render all built-in test charts",
		Long: `Render every built-in test chart in every output format into DIR.
Files are named <category>_<name>.<format>.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobs <= 0 {
				jobs = runtime.GOMAXPROCS(0)
			}
			n, err := a.export(cmd.Context(), args[0], jobs)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d files to %s\n", n, args[0])
			return nil
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "number of parallel writers (default: GOMAXPROCS)")
	return cmd
}

// export writes all test charts to dir and returns the number of files
// written.  After the first failure no further files are started.
func (a *app) export(ctx context.Context, dir string, jobs int) (int, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	count := 0
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			chart, err := semidonut.NewChart(tc.Input)
			if err != nil {
				_ = g.Wait()
				return 0, fmt.Errorf("%s_%s: %w", category, tc.Name, err)
			}
			for _, format := range formats {
				name := filepath.Join(dir, category+"_"+tc.Name+"."+format)
				count++
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					return a.writeFile(name, chart, format)
				})
			}
		}
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	a.log.Info("export complete", zap.String("dir", dir), zap.Int("files", count))
	return count, nil
}
