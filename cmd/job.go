package cmd

import (
	"fmt"
	"strings"

	"github.com/khrees2412/jobdesk/internal/app"
	"github.com/khrees2412/jobdesk/internal/client"
	"github.com/khrees2412/jobdesk/pkg/models"
	"github.com/spf13/cobra"
)

var jobCmd = &cobra.Command{
	Use:     "jobs",
	Aliases: []string{"job"},
	Short:   "Browse and save job postings",
}

var listJobsCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved job postings",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := appFrom(cmd)
		if err != nil {
			return err
		}

		limit, _ := cmd.Flags().GetInt("limit")
		jobs, err := client.Fetch[models.List[models.JobPosting]](cmd.Context(), application.Client, client.Jobs(limit))
		if err != nil {
			return fmt.Errorf("fetch jobs: %w", err)
		}

		if len(jobs) == 0 {
			cmd.Println("No jobs found. Crawl postings with 'jobdesk crawl <platform> <url>'")
			return nil
		}

		cmd.Println(titleStyle.Render("Saved Jobs"))
		for i, job := range jobs {
			cmd.Printf("\n%s. %s\n", labelStyle.Render(fmt.Sprintf("%d", i+1)), orElse(job.Title, "-"))
			field(cmd, "   ", "Company", job.Company)
			field(cmd, "   ", "Deadline", job.Deadline)
			field(cmd, "   ", "ID", job.ID.String())
			if job.CrawledAt != nil && !job.CrawledAt.IsZero() {
				field(cmd, "   ", "Crawled", job.CrawledAt.Format("Jan 2, 2006"))
			}
		}
		return nil
	},
}

var showJobCmd = &cobra.Command{
	Use:   "show <job-id>",
	Short: "Show details of a job posting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := appFrom(cmd)
		if err != nil {
			return err
		}

		job, err := client.Fetch[models.JobPosting](cmd.Context(), application.Client, client.Job(models.ID(args[0])))
		if err != nil {
			return fmt.Errorf("fetch job: %w", err)
		}
		printJob(cmd, job, "")
		return nil
	},
}

var saveJobCmd = &cobra.Command{
	Use:     "save",
	Short:   "Save a job posting",
	Example: `  jobdesk jobs save --title "Backend Engineer" --company "Acme" --link https://acme.example/jobs/1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := appFrom(cmd)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		get := func(name string) string {
			v, _ := flags.GetString(name)
			return strings.TrimSpace(v)
		}

		job := models.JobPosting{
			Title:          get("title"),
			Company:        get("company"),
			Description:    get("description"),
			Deadline:       get("deadline"),
			Link:           get("link"),
			Experience:     get("experience"),
			Education:      get("education"),
			EmploymentType: get("employment-type"),
			Location:       get("location"),
			Salary:         get("salary"),
			Platform:       get("platform"),
		}
		if job.Title == "" || job.Company == "" {
			return fmt.Errorf("%w: both --title and --company are required", app.ErrInvalidArgument)
		}

		saved, err := application.Saver.SaveJob(cmd.Context(), job)
		if err != nil {
			return fmt.Errorf("save job: %w", err)
		}

		cmd.Printf("✓ Job saved: %s at %s (ID: %s)\n", job.Title, job.Company, saved.JobID)
		return nil
	},
}

func printJob(cmd *cobra.Command, job models.JobPosting, indent string) {
	cmd.Println(indent + titleStyle.Render(orElse(job.Title, "-")))
	field(cmd, indent, "Company", job.Company)
	field(cmd, indent, "Deadline", job.Deadline)
	field(cmd, indent, "Experience", job.Experience)
	field(cmd, indent, "Education", job.Education)
	field(cmd, indent, "Employment", job.EmploymentType)
	field(cmd, indent, "Location", job.Location)
	field(cmd, indent, "Salary", job.Salary)
	field(cmd, indent, "Link", job.Link)
	if strings.TrimSpace(job.Description) != "" {
		cmd.Println(indent + labelStyle.Render("Description:"))
		cmd.Println(indent + job.Description)
	}
}

func init() {
	rootCmd.AddCommand(jobCmd)
	jobCmd.AddCommand(listJobsCmd)
	jobCmd.AddCommand(showJobCmd)
	jobCmd.AddCommand(saveJobCmd)

	listJobsCmd.Flags().Int("limit", 0, "maximum number of jobs (0 lists all)")

	for _, name := range []string{"title", "company", "description", "deadline", "link", "experience", "education", "employment-type", "location", "salary", "platform"} {
		saveJobCmd.Flags().String(name, "", "job "+strings.ReplaceAll(name, "-", " "))
	}
}
