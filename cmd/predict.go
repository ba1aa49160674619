package cmd

import (
	"github.com/huangsam/studentrisk/core"
	"github.com/huangsam/studentrisk/internal/contract"
	"github.com/huangsam/studentrisk/internal/outwriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// predictCmd predicts a risk level for one set of marks.
var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict the risk level for a set of component marks.",
	Long: `Run the trained model against one set of component marks.

The output shows both the fixed threshold level and the model's
prediction with its confidence, and flags any disagreement between the
two. Without a trained model the prediction reads "Model not trained".

Examples:
  # Predict for a strong student
  studentrisk predict --cat1 9 --cat2 8.5 --assignment 13 --attendance 4.5 --quiz 9

  # Predict with JSON output
  studentrisk predict --cat1 4 --cat2 5 --assignment 7 --attendance 2 --quiz 4 --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		marks := core.Marks{
			Cat1:       viper.GetFloat64("cat1"),
			Cat2:       viper.GetFloat64("cat2"),
			Assignment: viper.GetFloat64("assignment"),
			Attendance: viper.GetFloat64("attendance"),
			Quiz:       viper.GetFloat64("quiz"),
		}

		pred, err := core.LoadAndPredict(cfg, marks)
		if err != nil {
			contract.LogFatal("Cannot predict risk", err)
		}
		ow := outwriter.NewOutWriter()
		if err := ow.WritePredict(marks, pred, cfg); err != nil {
			contract.LogFatal("Cannot write prediction", err)
		}
	},
}
