package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lumen-ui/lumen/pkg/live"
)

func renderCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the widget gallery to static HTML",
		Long: `Render the widget gallery once and print the HTML, or write
it to a file with --out.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			html, err := live.RenderComponent(newCrustPicker())
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}
			if out == "" {
				fmt.Println(html)
				return nil
			}
			if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
				return fmt.Errorf("render: write %s: %w", out, err)
			}
			fmt.Printf("wrote %s (%d bytes)\n", out, len(html))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write HTML to this file instead of stdout")

	return cmd
}
