package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"nshub/internal/bootstrap"
	gradesin "nshub/internal/modules/grades/port/in"
	"nshub/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "nshub",
		Short:         "NetSchool terminal hub",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "credentials file path (default: user config dir)")

	root.AddCommand(newTUICmd(&configPath))
	root.AddCommand(newHomeworkCmd(&configPath))
	root.AddCommand(newScheduleCmd(&configPath))
	root.AddCommand(newGradesCmd(&configPath))
	root.AddCommand(newSchoolCmd(&configPath))
	root.AddCommand(newLoginCmd(&configPath))
	root.AddCommand(newLogoutCmd(&configPath))
	return root
}

func loadApp(configPath string) (*bootstrap.App, error) {
	return bootstrap.New(configPath)
}

func newTUICmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run nshub terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newHomeworkCmd(configPath *string) *cobra.Command {
	var tomorrowOnly bool

	homework := &cobra.Command{
		Use:   "homework",
		Short: "List pending homework, due-tomorrow items first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			assignments, err := app.DiaryCLI.Homework(context.Background(), tomorrowOnly)
			if err != nil {
				return err
			}
			if len(assignments) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no pending homework")
				return nil
			}
			for _, a := range assignments {
				marker := " "
				if a.IsDuty {
					marker = "!"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\n", marker, a.Deadline, a.Subject)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", a.Content)
				if a.Comment != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  // %s\n", a.Comment)
				}
			}
			return nil
		},
	}
	homework.Flags().BoolVar(&tomorrowOnly, "tomorrow", false, "only homework due tomorrow")
	return homework
}

func newScheduleCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Show tomorrow's lessons",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			schedule, err := app.DiaryCLI.Schedule(context.Background())
			if err != nil {
				return err
			}
			if !schedule.Available {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "tomorrow's schedule is not published yet")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "tomorrow %s\n", schedule.Date)
			for _, lesson := range schedule.Lessons {
				span := lesson.Start
				if lesson.End != "" {
					span += "-" + lesson.End
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s\t%s\t%s\n", lesson.Number, span, lesson.Subject, lesson.Room)
				for _, hw := range lesson.Homework {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "    hw: %s (%s)\n", hw.Content, hw.Deadline)
				}
			}
			return nil
		},
	}
}

func newGradesCmd(configPath *string) *cobra.Command {
	var subjectGroupID int
	var fromStr, toStr string
	var hasTerms, asJSON bool

	grades := &cobra.Command{
		Use:   "grades --subject-group <id>",
		Short: "Fetch and parse a subject grade report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if subjectGroupID == 0 {
				return fmt.Errorf("--subject-group is required")
			}
			from, to, err := parseRange(fromStr, toStr)
			if err != nil {
				return err
			}
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			input := gradesin.ReportInput{
				SubjectGroupID: subjectGroupID,
				From:           from,
				To:             to,
				HasTerms:       hasTerms,
			}
			if asJSON {
				payload, err := app.GradesCLI.ReportJSON(context.Background(), input)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), string(payload))
				return nil
			}
			report, err := app.GradesCLI.Report(context.Background(), input)
			if err != nil {
				return err
			}
			if report.Teacher != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "teacher: %s\n", report.Teacher)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "average: %.2f\n", report.Average)
			for _, item := range report.Items {
				date := item.Date
				if len(date) >= 10 {
					date = date[:10]
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%.0f\t%s\t%s\n", date, item.Mark, item.Type, item.Theme)
			}
			return nil
		},
	}
	grades.Flags().IntVar(&subjectGroupID, "subject-group", 0, "subject group id")
	grades.Flags().StringVar(&fromStr, "from", "", "range start, YYYY-MM-DD (default: 30 days ago)")
	grades.Flags().StringVar(&toStr, "to", "", "range end, YYYY-MM-DD (default: today)")
	grades.Flags().BoolVar(&hasTerms, "has-terms", false, "report uses term-based header layout")
	grades.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	return grades
}

func parseRange(fromStr, toStr string) (time.Time, time.Time, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -30)
	var err error
	if toStr != "" {
		if to, err = time.Parse("2006-01-02", toStr); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse --to: %w", err)
		}
	}
	if fromStr != "" {
		if from, err = time.Parse("2006-01-02", fromStr); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("parse --from: %w", err)
		}
	}
	return from, to, nil
}

func newSchoolCmd(configPath *string) *cobra.Command {
	school := &cobra.Command{Use: "school", Short: "School directory commands"}

	school.AddCommand(&cobra.Command{
		Use:   "search <name>",
		Short: "Search the portal school directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			schools, err := app.SchoolCLI.Search(context.Background(), args[0])
			if err != nil {
				return err
			}
			if len(schools) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no schools found")
				return nil
			}
			for _, s := range schools {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", s.ID, s.ShortName, s.Name)
			}
			return nil
		},
	})
	return school
}

func newLoginCmd(configPath *string) *cobra.Command {
	var username, password, school, baseURL string

	login := &cobra.Command{
		Use:   "login --username <login> --password <password> --school <name|id>",
		Short: "Store portal credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" || strings.TrimSpace(school) == "" {
				return fmt.Errorf("--username, --password and --school are required")
			}
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			err = app.Creds.Save(config.Credentials{
				Username: username,
				Password: password,
				School:   school,
				BaseURL:  baseURL,
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "credentials saved")
			return nil
		},
	}
	login.Flags().StringVar(&username, "username", "", "portal login")
	login.Flags().StringVar(&password, "password", "", "portal password")
	login.Flags().StringVar(&school, "school", "", "school name or numeric id")
	login.Flags().StringVar(&baseURL, "base-url", "", "portal base URL (default: "+config.DefaultBaseURL+")")
	return login
}

func newLogoutCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored portal credentials",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			if err := app.Creds.Invalidate(); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "credentials removed")
			return nil
		},
	}
}
