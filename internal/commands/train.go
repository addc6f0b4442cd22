package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"finsight/internal/models"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newTrainCommand() *cobra.Command {
	var labelsFile string

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Retrain the learned categorizer tier from stored transactions",
		Long: "Fits the TF-IDF vectorizer and tree-ensemble classifier on every " +
			"stored transaction description. Labels come from the keyword rules " +
			"unless a labels file supplies explicit overrides keyed by " +
			"transaction id.",
		RunE: coded(func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer app.Close()

			labels := map[uuid.UUID]models.Category{}
			if labelsFile != "" {
				labels, err = loadLabels(labelsFile)
				if err != nil {
					return err
				}
			}

			if err := app.Training.Train(labels); err != nil {
				return err
			}
			cmd.Printf("classifier trained, artifacts written to %s\n",
				app.Config.Model.ArtifactDir)
			return nil
		}),
	}

	cmd.Flags().StringVar(&labelsFile, "labels", "",
		"JSON file mapping transaction ids to category overrides")

	return cmd
}

func loadLabels(path string) (map[uuid.UUID]models.Category, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read labels file: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse labels file: %w", err)
	}

	labels := make(map[uuid.UUID]models.Category, len(raw))
	for id, category := range raw {
		uid, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("invalid transaction id %q in labels file: %w", id, err)
		}
		label := models.Category(category)
		if !models.IsValidCategory(label) {
			return nil, fmt.Errorf("invalid category %q in labels file", category)
		}
		labels[uid] = label
	}
	return labels, nil
}
