package cmd

import (
	"errors"
	"fmt"

	"github.com/khrees2412/jobdesk/internal/app"
	"github.com/khrees2412/jobdesk/internal/pipeline"
	"github.com/spf13/cobra"
)

var crawlCmd = &cobra.Command{
	Use:   "crawl <platform> [url]",
	Short: "Crawl a job posting through the tracker API",
	Example: `  jobdesk crawl linkedin https://www.linkedin.com/jobs/view/123
  jobdesk crawl wanted --test`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := appFrom(cmd)
		if err != nil {
			return err
		}

		test, _ := cmd.Flags().GetBool("test")
		var target string
		switch {
		case test:
			target = application.Crawler.TestURL()
		case len(args) == 2:
			target = args[1]
		default:
			return fmt.Errorf("%w: a url is required unless --test is set", app.ErrInvalidArgument)
		}

		platform, err := application.Registry.Lookup(args[0])
		if err != nil {
			return err
		}

		cmd.Printf("Crawling %s on %s...\n", target, platform.Label)
		res, err := application.Crawler.Crawl(cmd.Context(), platform.ID, target)
		var refusal *pipeline.Refusal
		if errors.As(err, &refusal) {
			cmd.Println(errorStyle.Render("✗ " + refusal.Message))
			return nil
		}
		if err != nil {
			return err
		}

		if len(res.Jobs) == 0 {
			cmd.Println(mutedStyle.Render("No postings found."))
			return nil
		}
		cmd.Printf("✓ %d posting(s) found\n", len(res.Jobs))
		for _, job := range res.Jobs {
			printJob(cmd, job, "  ")
		}

		save, _ := cmd.Flags().GetBool("save")
		if !save {
			return nil
		}
		for _, job := range res.Jobs {
			saved, err := application.Saver.SaveJob(cmd.Context(), job)
			if err != nil {
				cmd.Printf("✗ %s: %v\n", orElse(job.Title, "-"), err)
				continue
			}
			cmd.Printf("✓ Saved %s (ID: %s)\n", orElse(job.Title, "-"), saved.JobID)
		}
		return nil
	},
}

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List configured crawler platforms",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := appFrom(cmd)
		if err != nil {
			return err
		}

		cmd.Println(titleStyle.Render("Crawler Platforms"))
		for _, p := range application.Registry.All() {
			cmd.Printf("  • %s %s\n", labelStyle.Render(p.ID), p.Label)
			field(cmd, "    ", "Endpoint", p.Endpoint)
			field(cmd, "    ", "Containers", p.ResultsID+", "+p.ListID)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(crawlCmd)
	crawlCmd.AddCommand(platformsCmd)

	crawlCmd.Flags().Bool("test", false, "crawl the configured test URL")
	crawlCmd.Flags().Bool("save", false, "save every crawled posting")
}
