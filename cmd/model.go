package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/studentrisk/core"
	"github.com/huangsam/studentrisk/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// modelSetup loads minimal configuration needed for model operations.
// This is used by commands that touch the model blob without full shared setup.
func modelSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	cfg.ModelPath = viper.GetString("model")
	if cfg.ModelPath == "" {
		cfg.ModelPath = contract.DefaultModelPath
	}
	return nil
}

// modelSetupWrapper wraps modelSetup to provide PreRunE for model commands.
func modelSetupWrapper(_ *cobra.Command, _ []string) error {
	return modelSetup()
}

// modelCmd focused on model management.
var modelCmd = &cobra.Command{
	Use:   "model",
	Short: "Manage the persisted prediction model",
	Long: `Inspect or remove the persisted prediction model.

Subcommands:
  status - Show whether a trained model exists and its importance ranking
  clear  - Delete the persisted model

Examples:
  # Check the current model
  studentrisk model status

  # Remove the model to force retraining
  studentrisk model clear`,
}

// modelStatusCmd shows model status.
var modelStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display the persisted model's state and importance ranking",
	Long: `Show whether a trained model exists at the model path.

For a trained model, prints the label vocabulary and the ranked feature
importance table that also defines the model's inference order.`,
	PreRunE: modelSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		p := core.NewPredictor()
		found, err := p.Load(cfg.ModelPath)
		if err != nil {
			contract.LogFatal("Cannot load model", err)
		}

		fmt.Printf("Model path: %s\n", cfg.ModelPath)
		if !found || !p.Trained() {
			fmt.Println("Trained: false")
			return
		}

		fmt.Println("Trained: true")
		fmt.Println("Feature importance:")
		for i, imp := range p.Importance() {
			fmt.Printf("  %d. %s (%.4f)\n", i+1, imp.Feature, imp.Weight)
		}
	},
}

// modelClearCmd deletes the persisted model.
var modelClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the persisted prediction model",
	Long: `Remove the model blob from disk.

Use this when the roster has changed enough that the old model is
misleading, or before retraining from scratch. Deleting a missing model
is not an error.`,
	PreRunE: modelSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := os.Remove(cfg.ModelPath); err != nil && !os.IsNotExist(err) {
			contract.LogFatal("Cannot clear model", err)
		}
		fmt.Println("Model cleared successfully.")
	},
}
