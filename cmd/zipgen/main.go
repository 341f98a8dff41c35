package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"zippath/puzzle"
)

var rootCmd = &cobra.Command{
	Use:   "zipgen",
	Short: "Generate and solve zip path puzzles",
	Long: `zipgen is the headless companion to the zip path game: it generates
verified-solvable layouts, solves share codes or saved layout files,
and lists the shipped difficulty presets.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			puzzle.Log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log generation attempts")
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetEnvPrefix("zipgen")
	viper.AutomaticEnv()
	viper.SetConfigName(".zipgen")
	viper.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
	}
	viper.ReadInConfig() // missing config file is fine

	rootCmd.AddCommand(&cobra.Command{
		Use:   "presets",
		Short: "List the shipped difficulty presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range puzzle.Presets {
				c := p.Config
				fmt.Printf("%-8s %dx%d  anchors=%d  gap=%d  walls=%.0f%%\n",
					p.Name, c.Cols, c.Rows, c.Anchors, c.MinGap, c.WallPct*100)
			}
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "templates",
		Short: "List the path template names",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(strings.Join(puzzle.TemplateNames(), "\n"))
		},
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
