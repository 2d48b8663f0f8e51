package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/eslsoft/kelimo/internal/app"
	"github.com/eslsoft/kelimo/internal/entity"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Print a user's learning progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		output, _ := cmd.Flags().GetString("output")
		if output != "text" && output != "yaml" {
			return fmt.Errorf("unsupported output %q (want text or yaml)", output)
		}

		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("initialize: %w", err)
		}
		defer cleanup()

		snapshot, err := container.Progress.GetProgressSnapshot(cmd.Context(), userID)
		if err != nil {
			return err
		}
		if output == "yaml" {
			return writeProgressYAML(cmd.OutOrStdout(), snapshot)
		}
		writeProgressText(cmd.OutOrStdout(), snapshot)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(progressCmd)
	progressCmd.Flags().String("user", "", "user id")
	progressCmd.Flags().StringP("output", "o", "text", "output format: text or yaml")
	cobra.CheckErr(progressCmd.MarkFlagRequired("user"))
}

type progressView struct {
	LearnedCount int            `yaml:"learned_count"`
	TotalCount   int            `yaml:"total_count"`
	Accuracy     int            `yaml:"accuracy"`
	TotalScore   int64          `yaml:"total_score"`
	GamesPlayed  int64          `yaml:"games_played"`
	Streak       int            `yaml:"streak"`
	Weekly       map[string]int `yaml:"weekly"`
	Badges       []string       `yaml:"badges"`
}

func writeProgressYAML(w io.Writer, s *entity.ProgressSnapshot) error {
	view := progressView{
		LearnedCount: s.LearnedCount,
		TotalCount:   s.TotalCount,
		Accuracy:     s.Accuracy,
		TotalScore:   s.TotalScore,
		GamesPlayed:  s.GamesPlayed,
		Streak:       s.Streak,
		Weekly:       make(map[string]int, len(s.WeeklyData)),
		Badges:       []string{},
	}
	for _, day := range s.WeeklyData {
		view.Weekly[day.Date] = day.Words
	}
	for _, b := range s.Badges {
		if b.Unlocked {
			view.Badges = append(view.Badges, b.Name)
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return err
	}
	return enc.Close()
}

func writeProgressText(w io.Writer, s *entity.ProgressSnapshot) {
	bold := color.New(color.Bold)
	earned := color.New(color.FgGreen)
	locked := color.New(color.FgHiBlack)

	bold.Fprintln(w, "Progress")
	fmt.Fprintf(w, "  learned   %d / %d\n", s.LearnedCount, s.TotalCount)
	fmt.Fprintf(w, "  accuracy  %d%%\n", s.Accuracy)
	fmt.Fprintf(w, "  score     %d (%d games)\n", s.TotalScore, s.GamesPlayed)
	fmt.Fprintf(w, "  streak    %d days\n", s.Streak)

	bold.Fprintln(w, "Last 7 days")
	for _, day := range s.WeeklyData {
		fmt.Fprintf(w, "  %s %s %s %d\n", day.Date, day.Name, strings.Repeat("#", day.Words), day.Words)
	}

	bold.Fprintln(w, "Badges")
	for _, b := range s.Badges {
		if b.Unlocked {
			earned.Fprintf(w, "  [x] %s - %s\n", b.Name, b.Description)
		} else {
			locked.Fprintf(w, "  [ ] %s - %s\n", b.Name, b.Description)
		}
	}

	if len(s.RecentGames) > 0 {
		bold.Fprintln(w, "Recent games")
		for _, g := range s.RecentGames {
			fmt.Fprintf(w, "  %s %-10s score %d (%d/%d)\n", g.CreatedAt.Format("2006-01-02 15:04"), g.GameType, g.Score, g.Correct, g.Correct+g.Wrong)
		}
	}
}
