package cmd

import (
	"fmt"

	"github.com/khrees2412/jobdesk/internal/client"
	"github.com/khrees2412/jobdesk/pkg/models"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show recent jobs, application stats and recent feedback",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := appFrom(cmd)
		if err != nil {
			return err
		}
		cfg := application.Config
		api := application.Client

		var (
			jobs                          models.List[models.JobPosting]
			apps                          models.List[models.Application]
			feedbacks                     models.List[models.Feedback]
			jobsErr, appsErr, feedbackErr error
		)

		// Each section reports its own failure, so no task returns an error.
		g, ctx := errgroup.WithContext(cmd.Context())
		g.Go(func() error {
			jobs, jobsErr = client.Fetch[models.List[models.JobPosting]](ctx, api, client.Jobs(cfg.DashboardJobs))
			return nil
		})
		g.Go(func() error {
			apps, appsErr = client.Fetch[models.List[models.Application]](ctx, api, client.Applications())
			return nil
		})
		g.Go(func() error {
			feedbacks, feedbackErr = client.Fetch[models.List[models.Feedback]](ctx, api, client.Feedbacks(cfg.DashboardFeedbacks))
			return nil
		})
		_ = g.Wait()

		cmd.Println(titleStyle.Render("Recent Jobs"))
		switch {
		case jobsErr != nil:
			sectionFailed(cmd, "Jobs", jobsErr)
		case len(jobs) == 0:
			cmd.Println(mutedStyle.Render("No jobs yet."))
		default:
			for _, job := range jobs {
				cmd.Printf("  • %s at %s %s\n", orElse(job.Title, "-"), orElse(job.Company, "-"),
					mutedStyle.Render(fmt.Sprintf("(ID: %s)", job.ID)))
			}
		}

		cmd.Println(titleStyle.Render("Application Stats"))
		if appsErr != nil {
			sectionFailed(cmd, "Applications", appsErr)
		} else {
			tally := models.TallyStatuses(apps)
			for _, entry := range tally {
				cmd.Printf("  %s %d\n", labelStyle.Render(string(entry.Status)+":"), entry.Count)
			}
			cmd.Printf("  %s %d\n", labelStyle.Render("Total:"), tally.Total())
		}

		cmd.Println(titleStyle.Render("Recent Feedback"))
		switch {
		case feedbackErr != nil:
			sectionFailed(cmd, "Feedback", feedbackErr)
		case len(feedbacks) == 0:
			cmd.Println(mutedStyle.Render("No feedback yet."))
		default:
			for _, fb := range feedbacks {
				cmd.Printf("  • %s %s\n", orElse(fb.ResumeTitle, "-"), mutedStyle.Render(fmt.Sprintf("(ID: %s)", fb.ID)))
				cmd.Printf("    %s\n", preview(fb.FeedbackText, 150))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
