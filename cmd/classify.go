package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <title>",
	Short: "Print the category the classifier picks for a title",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		c, redisClient := newClassifier(cfg)
		if redisClient != nil {
			defer redisClient.Close()
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), c.Classify(cmd.Context(), strings.Join(args, " ")))
		return err
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
