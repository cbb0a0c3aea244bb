package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal. On any rendering error the
// raw markdown is printed instead, the report is never lost.
func printMarkdown(markdown string) {
	out, err := glamour.RenderWithEnvironmentConfig(markdown)
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
