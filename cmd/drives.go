package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/winshred/internal/ui"
	"github.com/lakshaymaurya-felt/winshred/internal/volume"
)

var drivesCmd = &cobra.Command{
	Use:   "drives",
	Short: "List volumes eligible for a free-space wipe",
	RunE: func(cmd *cobra.Command, args []string) error {
		infos, err := volume.List()
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println(ui.MutedStyle.Render("No volumes found."))
			return nil
		}

		fmt.Println(ui.TitleStyle.Render("Volumes"))
		fmt.Println(ui.MutedStyle.Render(fmt.Sprintf("  %-12s %-10s %-10s %10s %10s  %s",
			"PATH", "KIND", "FSTYPE", "TOTAL", "FREE", "LABEL")))
		for _, v := range infos {
			fmt.Printf("  %-12s %-10s %-10s %10s %10s  %s\n",
				v.Path, orDash(v.Kind), orDash(v.Fstype),
				ui.HumanBytes(v.TotalBytes), ui.HumanBytes(v.FreeBytes), v.Label)
		}
		return nil
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
