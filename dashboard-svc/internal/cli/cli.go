package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"foodplate-dashboard/dashboard-svc/internal/client"
	"foodplate-dashboard/dashboard-svc/internal/domain"
	"foodplate-dashboard/dashboard-svc/internal/service"

	"github.com/jessevdk/go-flags"
)

type session struct {
	opts   *Options
	http   client.HTTPClient
	out    io.Writer
	errOut io.Writer
}

// Run parses args and executes one dashboard action against the backend.
func Run(args []string, httpClient client.HTTPClient, out, errOut io.Writer) error {
	opts := &Options{}
	s := &session{opts: opts, http: httpClient, out: out, errOut: errOut}
	opts.List.session = s
	opts.Add.session = s
	opts.Edit.session = s
	opts.Toggle.session = s
	opts.Delete.session = s

	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.ParseArgs(args)
	return err
}

// withFoods loads the list, applies action and prints the result. Only a
// failed initial load is an error; everything else was already logged.
func (s *session) withFoods(action func(ctx context.Context, foods *service.Synchronizer) error) error {
	ctx := context.Background()
	foods := service.NewSynchronizer(client.NewFoodsClient(s.opts.API, s.http), nil, nil, nil)
	if err := foods.Load(ctx); err != nil {
		return err
	}

	if action != nil {
		if err := action(ctx, foods); errors.Is(err, service.ErrFoodNotFound) {
			fmt.Fprintln(s.errOut, service.AlertFoodNotFound)
		}
	}

	return printFoods(s.out, foods.Foods())
}

func printFoods(out io.Writer, foods []domain.FoodPlate) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tAVAILABLE\tDESCRIPTION")
	for _, f := range foods {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", f.ID, f.Name, f.Price, yesNo(f.Available), f.Description)
	}
	return w.Flush()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
