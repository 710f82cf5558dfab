// segmentctl is an operations CLI for the recommendation pipeline: it
// inspects the trained artifacts and runs one-off recommendations from a
// preferences file without standing up the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"podcast-recommender/internal/adapter/artifactstore"
	"podcast-recommender/internal/di"
	"podcast-recommender/internal/domain"
	"podcast-recommender/internal/infra/config"
	"podcast-recommender/internal/infra/logger"
)

func main() {
	root := &cobra.Command{
		Use:           "segmentctl",
		Short:         "Inspect artifacts and run the recommendation pipeline locally",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newArtifactsCmd())
	root.AddCommand(newRecommendCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newArtifactsCmd() *cobra.Command {
	var modelDir string

	cmd := &cobra.Command{
		Use:   "artifacts",
		Short: "Validate the trained artifacts and print the availability gate",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger.New()
			store := artifactstore.Load(modelDir, log)

			files := []string{
				artifactstore.ModelFile,
				artifactstore.ScalerFile,
				artifactstore.SchemaFile,
				artifactstore.ProfilesFile,
			}
			for _, f := range files {
				status := "ok"
				if _, err := os.Stat(filepath.Join(modelDir, f)); err != nil {
					status = "missing"
				}
				fmt.Printf("%-25s %s\n", f, status)
			}

			if store.Available() {
				fmt.Println("availability gate: up (model path active)")
			} else {
				fmt.Println("availability gate: down (heuristic path active)")
			}
			fmt.Printf("segment profiles: %d\n", len(store.Profiles()))
			return nil
		},
	}

	cmd.Flags().StringVar(&modelDir, "model-dir", "models", "directory holding the trained artifacts")
	return cmd
}

func newRecommendCmd() *cobra.Command {
	var (
		inputPath string
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Run the full pipeline for a preferences JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("reading preferences: %w", err)
			}

			var prefs domain.PreferencesRecord
			if err := json.Unmarshal(data, &prefs); err != nil {
				return fmt.Errorf("parsing preferences: %w", err)
			}
			if err := prefs.Validate(); err != nil {
				var verr *domain.ValidationError
				if errors.As(err, &verr) {
					for _, f := range verr.Fields {
						fmt.Fprintf(os.Stderr, "invalid field %s: %s\n", f.Field, f.Reason)
					}
				}
				return err
			}

			cfg := config.Load()
			log := logger.New()
			components := di.NewApplicationComponents(cfg, log)

			segment, profile, err := components.AssignUsecase.Assign(prefs)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), timeout)
			defer cancel()
			items := components.RecommendUsecase.Generate(ctx, prefs, profile)

			out, err := json.MarshalIndent(domain.RecommendationResponse{
				Segment:         segment,
				SegmentProfile:  profile,
				Recommendations: items,
			}, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to a preferences JSON file (required)")
	cmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "overall pipeline timeout")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
