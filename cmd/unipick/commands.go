package main

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"unipick/internal/backend"
	"unipick/internal/catalog"
	"unipick/internal/identity"
	"unipick/internal/report"
	surveyhandler "unipick/internal/survey/handler"
	surveyservice "unipick/internal/survey/service"
	surveystore "unipick/internal/survey/store"
	dErrors "unipick/pkg/domain-errors"
)

var errNoIdentity = errors.New("anonymous identity is unavailable")

func newWhoamiCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the anonymous id, minting one on first use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			storage, err := opts.storage()
			if err != nil {
				return err
			}
			id := identity.GetAnonymousUserID(cmd.Context(), storage)
			if id == "" {
				return errNoIdentity
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func newForgetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "forget",
		Short: "Drop the anonymous id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			storage, err := opts.storage()
			if err != nil {
				return err
			}
			if err := storage.Remove(cmd.Context()); err != nil {
				return fmt.Errorf("clear anonymous identity: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "anonymous identity cleared")
			return nil
		},
	}
}

func newSubmitCmd(opts *options) *cobra.Command {
	var answersPath string
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a YAML answers file",
		Long: `Submit fills one survey session from a YAML answers file and posts it.

Missing or invalid answers are listed by field and nothing is sent.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			answers, err := LoadAnswers(answersPath)
			if err != nil {
				return err
			}
			storage, err := opts.storage()
			if err != nil {
				return err
			}
			userID := identity.GetAnonymousUserID(ctx, storage)
			if userID == "" {
				return errNoIdentity
			}

			svc := surveyservice.New(surveystore.NewMemory(0), opts.client(), opts.logger())
			session, err := answers.Submit(ctx, svc, userID)
			if err != nil {
				if fields := dErrors.FieldsOf(err); len(fields) > 0 {
					out := cmd.OutOrStdout()
					for _, field := range slices.Sorted(maps.Keys(fields)) {
						fmt.Fprintf(out, "  %s: %s\n", field, fields[field])
					}
					return fmt.Errorf("%d answers need attention", len(fields))
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "evaluation: %s\n", session.EvaluationID)
			fmt.Fprintf(out, "result: %s\n", surveyhandler.ResultPath(session.EvaluationID))
			return nil
		},
	}
	cmd.Flags().StringVar(&answersPath, "answers", "", "YAML answers file")
	_ = cmd.MarkFlagRequired("answers")
	return cmd
}

func newResultCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "result <evaluation-id>",
		Short: "Render a stored evaluation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := opts.client().GetParentEvaluation(cmd.Context(), args[0])
			if err != nil {
				if backend.IsNotFound(err) {
					return fmt.Errorf("evaluation %s not found", args[0])
				}
				opts.logger().Warn("failed to fetch evaluation", "evaluation_id", args[0], "error", err)
				return errors.New("the evaluation could not be loaded, please retry")
			}
			view, err := report.Build(record)
			if err != nil {
				return fmt.Errorf("evaluation %s is malformed: %w", args[0], err)
			}
			return opts.print(cmd, report.Markdown(view))
		},
	}
}

func newUniversitiesCmd(opts *options) *cobra.Command {
	req := catalog.UniversityQueryRequest{}
	cmd := &cobra.Command{
		Use:   "universities",
		Short: "Browse the university catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := req.Validate(); err != nil {
				return err
			}
			page, err := opts.client().ListUniversities(cmd.Context(), req.Query())
			if err != nil {
				return err
			}
			return opts.print(cmd, universitiesMarkdown(page))
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&req.Search, "search", "", "name search")
	flags.StringVar(&req.Country, "country", "", "country filter")
	flags.StringVar(&req.Type, "type", "", "public or private")
	flags.StringVar(&req.Strength, "strength", "", "strength filter")
	flags.IntVar(&req.RankMin, "rank-min", 0, "best rank to include")
	flags.IntVar(&req.RankMax, "rank-max", 0, "worst rank to include")
	flags.IntVar(&req.TuitionMax, "tuition-max", 0, "maximum yearly tuition")
	flags.IntVar(&req.Page, "page", 1, "page number")
	flags.IntVar(&req.PageSize, "page-size", 20, "rows per page")
	return cmd
}

func universitiesMarkdown(page *backend.UniversityPage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Universities\n\n%d total, page %d\n\n", page.Total, page.Page)
	if len(page.Items) == 0 {
		b.WriteString("No universities match these filters.\n")
		return b.String()
	}
	b.WriteString("| Rank | Name | Country | Tuition |\n|---|---|---|---|\n")
	for _, u := range page.Items {
		rank := "-"
		if u.Rank > 0 {
			rank = fmt.Sprintf("#%d", u.Rank)
		}
		tuition := "-"
		if u.Tuition > 0 {
			tuition = fmt.Sprintf("$%.0f", u.Tuition)
		}
		name := u.Name
		if u.NameCN != "" {
			name += " (" + u.NameCN + ")"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", rank, name, u.Country, tuition)
	}
	return b.String()
}
