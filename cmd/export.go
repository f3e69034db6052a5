package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"todo-service.com/todo-service/internal/export"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all todos as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		todos, err := a.todos.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list todos: %w", err)
		}

		var out io.Writer = cmd.OutOrStdout()
		if exportOutput != "" && exportOutput != "-" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}

		return export.WriteTodos(out, todos)
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "file to write, stdout when empty")
	rootCmd.AddCommand(exportCmd)
}
