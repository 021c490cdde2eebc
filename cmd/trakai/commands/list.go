package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"git.home.luguber.info/inful/trakai/internal/site"
)

// ListCmd implements the 'list' command.
type ListCmd struct{}

func (l *ListCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	res, err := site.NewBuilder(cfg, site.WithLogger(g.Logger)).ReadContent()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(g.Out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DATE\tNAME\tTITLE\tTAGS")
	for _, rec := range res.Records {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rec.DateString, rec.Name, rec.Title, strings.Join(rec.Tags, ","))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.Out, "%d records, %d tags\n", len(res.Records), len(res.Tags))
	return nil
}
