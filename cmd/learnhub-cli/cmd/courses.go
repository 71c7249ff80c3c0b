package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nfrund/learnhub/internal/apiclient"
	"github.com/nfrund/learnhub/internal/domain"
	"github.com/nfrund/learnhub/internal/format"
)

func newCoursesCmd(opts *options) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List the course catalog",
		Long: `List the public course catalog with ratings.

With --all and an admin token, every course is listed, published or not.

Examples:
  learnhub-cli courses
  learnhub-cli courses --format json
  learnhub-cli courses --all --token $ADMIN_TOKEN`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(opts.format); err != nil {
				return err
			}
			api, err := opts.client()
			if err != nil {
				return err
			}
			courses := apiclient.NewCourseClient(api)
			ctx := opts.context(cmd.Context())

			var list []domain.Course
			if all {
				list, err = courses.All(ctx)
			} else {
				list, err = courses.PublicWithRatings(ctx)
			}
			if err != nil {
				return fmt.Errorf("failed to list courses: %w", err)
			}

			out := cmd.OutOrStdout()
			if opts.format == "json" {
				return printJSON(out, list)
			}
			if len(list) == 0 {
				fmt.Fprintln(out, "No courses found.")
				return nil
			}

			tw := newTable(out)
			fmt.Fprintln(tw, "ID\tTITLE\tINSTRUCTOR\tPRICE\tRATING")
			for _, c := range list {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.1f (%d)\n",
					c.CourseID, c.DisplayTitle(), c.InstructorName, format.Price(c.Price), c.AverageRating, c.ReviewCount)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "List every course (admin token required)")
	return cmd
}
