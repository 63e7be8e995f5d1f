package cmd

import (
	"fmt"
	"strings"

	"github.com/khrees2412/jobdesk/internal/client"
	"github.com/khrees2412/jobdesk/pkg/models"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "View application status",
	Long:  "View applications grouped by their current stage",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := appFrom(cmd)
		if err != nil {
			return err
		}
		filter, _ := cmd.Flags().GetString("filter")
		filter = strings.TrimSpace(filter)

		apps, err := client.Fetch[models.List[models.Application]](cmd.Context(), application.Client, client.Applications())
		if err != nil {
			return fmt.Errorf("fetch applications: %w", err)
		}
		if len(apps) == 0 {
			cmd.Println("No applications yet.")
			return nil
		}

		groups := make(map[models.ApplicationStatus][]models.Application)
		var other []models.Application
		for _, a := range apps {
			if filter != "" && string(a.Status) != filter {
				continue
			}
			if a.Status.Known() {
				groups[a.Status] = append(groups[a.Status], a)
			} else {
				other = append(other, a)
			}
		}

		if len(groups) == 0 && len(other) == 0 {
			cmd.Printf("No applications with status '%s'\n", filter)
			return nil
		}

		cmd.Println(titleStyle.Render("Your Applications"))
		for _, status := range models.Statuses() {
			printStatusGroup(cmd, string(status), groups[status])
		}
		printStatusGroup(cmd, "Other", other)
		return nil
	},
}

func printStatusGroup(cmd *cobra.Command, label string, apps []models.Application) {
	if len(apps) == 0 {
		return
	}
	cmd.Printf("\n%s (%d)\n", labelStyle.Render(label), len(apps))
	for _, a := range apps {
		cmd.Printf("  • %s at %s\n", orElse(a.JobTitle, "-"), orElse(a.Company, "-"))
		applied := "-"
		if !a.AppliedAt.IsZero() {
			applied = a.AppliedAt.Format("Jan 2, 2006")
		}
		cmd.Printf("    %s %s | %s %s | Applied: %s\n",
			labelStyle.Render("Job:"), a.JobID,
			labelStyle.Render("Resume:"), orElse(a.ResumeTitle, a.ResumeID.String()),
			applied)
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().String("filter", "", "show only one status, e.g. 서류 합격")
}
