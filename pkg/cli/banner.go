package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = ` ____                _ _   _
|  _ \ ___  ___   ___(_) |_(_) ___  ___
| |_) / _ \/ _ \ / __| | __| |/ _ \/ __|
|  _ <  __/ (_) | (__| | |_| |  __/\__ \
|_| \_\___|\___/ \___|_|\__|_|\___||___/`

var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	taglineStyle = lipgloss.NewStyle().Faint(true)
)

// printBanner renders the ASCII banner shown on a bare invocation.
func printBanner() {
	fmt.Println(bannerStyle.Render(bannerArt))
	fmt.Println(taglineStyle.Render("Reocities CLI - Manage your site from the command line"))
	fmt.Println()
}
