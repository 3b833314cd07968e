package check

import (
	"context"
	"fmt"

	"github.com/testsel/testsel/cli/commands/common"
	"github.com/testsel/testsel/internal/errors"
	"github.com/testsel/testsel/internal/queryfilter"
	"github.com/testsel/testsel/options"
)

// Run compiles every query and prints either its compiled form or a caret diagnostic.
// Returns an InvalidQueriesError if at least one query is invalid.
func Run(ctx context.Context, opts *options.TestselOptions) error {
	if len(opts.Filters) == 0 {
		opts.Logger.Warnf("No query filters to check")
		return nil
	}

	useColor := common.UseColor(opts)
	invalid := 0

	err := queryfilter.TraceParse(ctx, opts.Filters, func(_ context.Context) error {
		for i, query := range opts.Filters {
			filter, err := queryfilter.Parse(query)
			if err == nil {
				fmt.Fprintf(opts.Writer, "'%s' is valid: %s\n", query, filter)
				continue
			}

			var queryErr *queryfilter.InvalidQueryError
			if !errors.As(err, &queryErr) {
				return err
			}

			invalid++

			filterIndex := 0
			if len(opts.Filters) > 1 {
				filterIndex = i + 1
			}

			fmt.Fprintln(opts.Writer, queryfilter.FormatDiagnostic(queryErr, filterIndex, useColor))
		}

		return nil
	})
	if err != nil {
		return err
	}

	if invalid > 0 {
		return errors.New(NewInvalidQueriesError(invalid, len(opts.Filters)))
	}

	return nil
}
