package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const starterDoc = `# enumgen declaration document.
# Run: enumgen generate enums.yaml -o ./enums
interfaces:
  - name: Column
    properties:
      - name: header
        class: string
        preset: Title
      - name: position
        class: numeric
        kind: uint
        preset: Ordinal

enums:
  - name: ReportColumn
    implements: Column
    variants:
      - name: CreatedAt
        values:
          header: Created
      - name: Amount
      - name: Status
`

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write a starter declaration document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "enums.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		if err := os.WriteFile(path, []byte(starterDoc), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
