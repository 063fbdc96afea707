package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/djchat/internal/colormode"
	"github.com/thatcatcamp/djchat/internal/config"
	"github.com/thatcatcamp/djchat/internal/themes"
)

var (
	modeFlag    string
	paletteFlag string
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect the generated theme",
}

var themeCSSCmd = &cobra.Command{
	Use:   "css",
	Short: "Print the stylesheet for a mode",
	Run: func(cmd *cobra.Command, args []string) {
		mode, ok := colormode.ParseMode(modeFlag)
		if !ok {
			fatalf("Invalid mode %q (use light or dark)", modeFlag)
		}

		palette := paletteFlag
		if palette == "" {
			mustInitConfig()
			palette = config.GetString("theme.palette")
		}

		fmt.Print(themes.GenerateCSS(themes.NewFactory(palette).Build(mode)))
	},
}

var themePalettesCmd = &cobra.Command{
	Use:   "palettes",
	Short: "List accent palettes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, p := range themes.ListPalettes() {
			fmt.Printf("%-10s %s %s\n", p.Name, p.Primary, p.Secondary)
		}
	},
}

func init() {
	themeCSSCmd.Flags().StringVar(&modeFlag, "mode", "light", "light or dark")
	themeCSSCmd.Flags().StringVar(&paletteFlag, "palette", "", "accent palette (defaults to theme.palette)")

	themeCmd.AddCommand(themeCSSCmd)
	themeCmd.AddCommand(themePalettesCmd)
	rootCmd.AddCommand(themeCmd)
}
