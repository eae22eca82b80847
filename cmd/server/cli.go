package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prithvinet/backend/internal/aqi"
	"github.com/prithvinet/backend/internal/domain"
	"github.com/prithvinet/backend/internal/repository/postgres"
	"github.com/prithvinet/backend/internal/service"
)

func simulateCmd() *cobra.Command {
	params := domain.DefaultScenario()

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one what-if scenario and print the result as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewSimulatorService(postgres.NewMockRepository(), nil, zap.NewNop())
			out := svc.Run(cmd.Context(), nil, params)
			svc.WaitBackground()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().Float64Var(&params.ProductionChange, "production", params.ProductionChange, "Production change in percent (-50..50)")
	cmd.Flags().Float64Var(&params.RenewableEnergy, "renewable", params.RenewableEnergy, "Renewable energy adoption in percent (0..100)")
	cmd.Flags().Float64Var(&params.UrbanExpansion, "urban", params.UrbanExpansion, "Urban expansion in area units (0..200)")
	cmd.Flags().Float64Var(&params.WasteReduction, "waste", params.WasteReduction, "Waste reduction in percent (0..100)")

	return cmd
}

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "classify VALUE...",
		Short:              "Print the AQI category for each value",
		Args:               cobra.MinimumNArgs(1),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				value, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid AQI value %q: %w", arg, err)
				}
				c := aqi.Classify(value)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", arg, c.Status, c.Color)
			}
			return nil
		},
	}
}
