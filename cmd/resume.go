package cmd

import (
	"fmt"

	"github.com/khrees2412/jobdesk/internal/client"
	"github.com/khrees2412/jobdesk/pkg/models"
	"github.com/spf13/cobra"
)

var resumeCmd = &cobra.Command{
	Use:     "resumes",
	Aliases: []string{"resume"},
	Short:   "Browse uploaded resumes",
}

var listResumesCmd = &cobra.Command{
	Use:   "list",
	Short: "List resumes",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := appFrom(cmd)
		if err != nil {
			return err
		}

		resumes, err := client.Fetch[models.List[models.Resume]](cmd.Context(), application.Client, client.Resumes())
		if err != nil {
			return fmt.Errorf("fetch resumes: %w", err)
		}
		if len(resumes) == 0 {
			cmd.Println("No resumes uploaded yet.")
			return nil
		}

		cmd.Println(titleStyle.Render("Resumes"))
		for _, r := range resumes {
			cmd.Printf("  • %s %s\n", orElse(r.Title, "-"), mutedStyle.Render(fmt.Sprintf("(ID: %s)", r.ID)))
			if !r.UploadedAt.IsZero() {
				field(cmd, "    ", "Uploaded", r.UploadedAt.Format("Jan 2, 2006"))
			}
		}
		return nil
	},
}

var showResumeCmd = &cobra.Command{
	Use:   "show <resume-id>",
	Short: "Show a resume's text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := appFrom(cmd)
		if err != nil {
			return err
		}

		r, err := client.Fetch[models.Resume](cmd.Context(), application.Client, client.Resume(models.ID(args[0])))
		if err != nil {
			return fmt.Errorf("fetch resume: %w", err)
		}

		cmd.Println(titleStyle.Render(orElse(r.Title, "-")))
		if !r.UploadedAt.IsZero() {
			field(cmd, "", "Uploaded", r.UploadedAt.Format("Jan 2, 2006 15:04"))
		}
		cmd.Println()
		cmd.Println(r.TextContent)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resumeCmd)
	resumeCmd.AddCommand(listResumesCmd)
	resumeCmd.AddCommand(showResumeCmd)
}
