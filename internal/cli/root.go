package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "mealweek",
	Short:         "Track the meals and calories of your week",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetHelpFunc(colorizedHelp)

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(eatCmd)
	rootCmd.AddCommand(uneatCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		_, _ = rootCmd.ErrOrStderr().Write([]byte(Error("error: "+err.Error()) + "\n"))
	}
	return err
}
