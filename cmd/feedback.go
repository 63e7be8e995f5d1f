package cmd

import (
	"fmt"

	"github.com/khrees2412/jobdesk/internal/client"
	"github.com/khrees2412/jobdesk/pkg/models"
	"github.com/spf13/cobra"
)

var feedbackCmd = &cobra.Command{
	Use:     "feedbacks",
	Aliases: []string{"feedback"},
	Short:   "Browse resume feedback",
}

var listFeedbacksCmd = &cobra.Command{
	Use:   "list",
	Short: "List feedback entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := appFrom(cmd)
		if err != nil {
			return err
		}

		limit, _ := cmd.Flags().GetInt("limit")
		feedbacks, err := client.Fetch[models.List[models.Feedback]](cmd.Context(), application.Client, client.Feedbacks(limit))
		if err != nil {
			return fmt.Errorf("fetch feedback: %w", err)
		}
		if len(feedbacks) == 0 {
			cmd.Println("No feedback yet.")
			return nil
		}

		cmd.Println(titleStyle.Render("Feedback"))
		for _, fb := range feedbacks {
			attached := "no"
			if fb.HasJob() {
				attached = "yes"
			}
			cmd.Printf("  • %s %s\n", orElse(fb.ResumeTitle, "-"), mutedStyle.Render(fmt.Sprintf("(ID: %s)", fb.ID)))
			field(cmd, "    ", "Job attached", attached)
			if !fb.CreatedAt.IsZero() {
				field(cmd, "    ", "Created", fb.CreatedAt.Format("Jan 2, 2006"))
			}
		}
		return nil
	},
}

var showFeedbackCmd = &cobra.Command{
	Use:   "show <feedback-id>",
	Short: "Show a feedback entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := appFrom(cmd)
		if err != nil {
			return err
		}

		fb, err := client.Fetch[models.Feedback](cmd.Context(), application.Client, client.Feedback(models.ID(args[0])))
		if err != nil {
			return fmt.Errorf("fetch feedback: %w", err)
		}

		cmd.Println(titleStyle.Render(fmt.Sprintf("Feedback for %s", orElse(fb.ResumeTitle, "-"))))
		if fb.HasJob() {
			field(cmd, "", "Job ID", fb.JobID.String())
		}
		cmd.Println(fb.FeedbackText)
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare <job-id> <resume-id>",
	Short: "Show a job posting next to a resume",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := appFrom(cmd)
		if err != nil {
			return err
		}

		cmp, err := client.Fetch[models.Compare](cmd.Context(), application.Client, client.Compare(models.ID(args[0]), models.ID(args[1])))
		if err != nil {
			return fmt.Errorf("fetch comparison: %w", err)
		}

		printJob(cmd, cmp.Job, "")
		cmd.Println(titleStyle.Render(orElse(cmp.Resume.Title, "-")))
		cmd.Println(cmp.Resume.TextContent)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(compareCmd)
	feedbackCmd.AddCommand(listFeedbacksCmd)
	feedbackCmd.AddCommand(showFeedbackCmd)

	listFeedbacksCmd.Flags().Int("limit", 0, "maximum number of entries (0 lists all)")
}
