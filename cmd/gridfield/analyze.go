// The analyze command: run the full ranking → adjacency → complex
// pipeline over a generated field and print the structural summary.

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridfield/adjacency"
)

var (
	flagSort string
	flagMin  float64
	flagMax  float64
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the adjacency structure of a generated dataset",
	Long: `Generate a field, rank its cells (sort mode up or down, with an
optional inclusive value range), compute queen-contiguity adjacency and
build the bounded simplicial complex. Prints the neighbor-count
histogram and the per-dimension simplex counts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := generateField(cmd)
		if err != nil {
			return err
		}

		sortName := flagSort
		if !cmd.Flags().Changed("sort") {
			sortName = cfg.GetString(cfgKeySort)
		}
		mode, err := adjacency.ParseSortMode(sortName)
		if err != nil {
			return err
		}

		var opts []adjacency.FilterOption
		if cmd.Flags().Changed("min") || cmd.Flags().Changed("max") {
			opts = append(opts, adjacency.WithRange(flagMin, flagMax))
		}

		p := adjacency.NewPipeline(adjacency.FromField(f))
		ranked, err := p.FilterSort(mode, opts...)
		if err != nil {
			return err
		}
		logger.Debug("records ranked",
			zap.String("sort", mode.String()),
			zap.Int("kept", len(ranked)),
			zap.Int("total", f.Side*f.Side))

		adj, _, err := p.Adjacency()
		if err != nil {
			return err
		}
		c, err := p.BuildComplex()
		if err != nil {
			return err
		}

		fmt.Printf("records: %d of %d kept\n", len(ranked), f.Side*f.Side)
		printDegreeHistogram(adj)
		for d := 0; d <= c.MaxDimension(); d++ {
			fmt.Printf("simplices dim %d: %d\n", d, c.Count(d))
		}
		fmt.Printf("euler characteristic: %d\n", c.EulerCharacteristic())
		return nil
	},
}

func init() {
	addGenerateFlags(analyzeCmd)
	analyzeCmd.Flags().StringVar(&flagSort, "sort", "", "sort mode: up|down")
	analyzeCmd.Flags().Float64Var(&flagMin, "min", 0, "inclusive lower value bound")
	analyzeCmd.Flags().Float64Var(&flagMax, "max", 0, "inclusive upper value bound")
}

// printDegreeHistogram prints how many records have each neighbor count.
func printDegreeHistogram(adj map[int][]int) {
	hist := make(map[int]int)
	for _, ns := range adj {
		hist[len(ns)]++
	}
	degrees := make([]int, 0, len(hist))
	for d := range hist {
		degrees = append(degrees, d)
	}
	sort.Ints(degrees)
	for _, d := range degrees {
		fmt.Printf("neighbors %d: %d records\n", d, hist[d])
	}
}
