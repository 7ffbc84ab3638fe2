package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/artshowcase/showcase/internal/api"
	"github.com/artshowcase/showcase/internal/listing"
	"github.com/artshowcase/showcase/internal/model"
)

const exploreHelp = `Type to search. Commands:
  :c <category>  filter by category (empty for all)
  :s <sort>      sort by recent, likes or title
  :p <n>         go to page n
  :n / :b        next / previous page
  :clear         clear search and category
  :r             fetch again
  :q             quit
`

func exploreCmd(a *app) *cobra.Command {
	var category, sortKey string

	cmd := &cobra.Command{
		Use:   "explore [search]",
		Short: "Search and browse public artworks",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.services()
			if err != nil {
				return err
			}
			sess := s.session(cmd.ErrOrStderr())

			fetch := func(ctx context.Context, f listing.Filter) ([]model.Artwork, error) {
				return s.artworks.Search(ctx, sess, f)
			}
			opts := listing.ExploreOptions
			opts.Debounce = a.debounce

			ex := newExplorer(cmd.OutOrStdout())
			ctrl := listing.NewController(cmd.Context(), fetch, opts, ex.render)
			defer ctrl.Close()
			ex.ctrl = ctrl

			if q := strings.Join(args, " "); q != "" {
				ex.handle(q)
			}
			if category != "" {
				ex.handle(":c " + category)
			}
			if sortKey != "" {
				ex.handle(":s " + sortKey)
			}

			ex.printf("%s", exploreHelp)
			return ex.run(bufio.NewScanner(cmd.InOrStdin()))
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "initial category filter")
	cmd.Flags().StringVarP(&sortKey, "sort", "s", "", "initial sort: recent, likes or title")
	return cmd
}

// explorer is the interactive explore screen. Input lines drive the listing
// controller; every view the controller publishes is printed.
type explorer struct {
	ctrl *listing.Controller

	mu      sync.Mutex
	out     io.Writer
	pending bool // a fetch is scheduled; views before it starts are not printed
}

func newExplorer(out io.Writer) *explorer {
	return &explorer{out: out, pending: true}
}

func (e *explorer) printf(format string, args ...any) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fmt.Fprintf(e.out, format, args...)
}

func (e *explorer) run(sc *bufio.Scanner) error {
	for sc.Scan() {
		if quit := e.handle(sc.Text()); quit {
			return nil
		}
	}
	return sc.Err()
}

// handle applies one input line. It reports whether the user asked to quit.
func (e *explorer) handle(line string) bool {
	line = strings.TrimSpace(line)
	state := e.ctrl.State()

	if !strings.HasPrefix(line, ":") {
		if line == "" {
			e.render(e.ctrl.View())
			return false
		}
		if state.SetSearch(line) {
			e.expectFetch()
		}
		e.ctrl.SetSearch(line)
		return false
	}

	cmd, arg, _ := strings.Cut(line[1:], " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "q", "quit":
		return true
	case "c", "category":
		cat := model.CategoryAll
		if arg != "" {
			var ok bool
			if cat, ok = model.ParseCategory(arg); !ok {
				e.printf("Unknown category %q. Choose one of: %s\n", arg, categoryNames())
				return false
			}
		}
		if state.SetCategory(cat) {
			e.expectFetch()
		}
		e.ctrl.SetCategory(cat)
	case "s", "sort":
		key := listing.ParseSortKey(arg)
		if string(key) != strings.ToLower(arg) {
			e.printf("Unknown sort %q. Choose recent, likes or title\n", arg)
			return false
		}
		e.ctrl.SetSort(key)
	case "p", "page":
		n, err := strconv.Atoi(arg)
		if err != nil {
			e.printf("Usage: :p <page number>\n")
			return false
		}
		e.ctrl.SetPage(n)
	case "n", "next":
		e.ctrl.NextPage()
	case "b", "back":
		e.ctrl.PrevPage()
	case "clear":
		if state.ClearFilters() {
			e.expectFetch()
		}
		e.ctrl.ClearFilters()
	case "r", "refresh":
		e.expectFetch()
		e.ctrl.Refresh()
	case "h", "help":
		e.printf("%s", exploreHelp)
	default:
		e.printf("Unknown command :%s, type :h for help\n", cmd)
	}
	return false
}

func (e *explorer) expectFetch() {
	e.mu.Lock()
	e.pending = true
	e.mu.Unlock()
}

// render is the controller's change callback; it runs on the REPL goroutine
// or on the controller's fetch goroutine.
func (e *explorer) render(v listing.View) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch {
	case v.Loading:
		if e.pending {
			fmt.Fprintln(e.out, "Searching...")
		}
		e.pending = false
	case e.pending:
		// the scheduled fetch prints when it starts and ends
	default:
		printView(e.out, v)
	}
}

func printView(w io.Writer, v listing.View) {
	if v.Err != nil {
		fmt.Fprintf(w, "Could not load artworks: %s\n", api.Message(v.Err, "please try again"))
	}
	if v.Empty() {
		if v.State.HasFilters() {
			fmt.Fprintln(w, "No artworks match your filters. Type :clear to reset them.")
		} else {
			fmt.Fprintln(w, "No artworks yet.")
		}
		return
	}

	fmt.Fprintf(w, "\n%s\n", summary(v))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, a := range v.Items {
		fmt.Fprintf(tw, "%3d.\t%s\t%s\t%s\t♥ %d\t%s\n", v.Start+i, a.Title, artistName(a), a.Category, a.Likes, a.ID)
	}
	_ = tw.Flush()
	if v.TotalPages > 1 {
		fmt.Fprintf(w, "Page %d of %d\n", v.Page, v.TotalPages)
	}
}

func summary(v listing.View) string {
	noun := "artworks"
	if v.Total == 1 {
		noun = "artwork"
	}
	parts := []string{fmt.Sprintf("Showing %d-%d of %d %s", v.Start, v.End, v.Total, noun)}
	if v.State.Search != "" {
		parts = append(parts, fmt.Sprintf("search %q", v.State.Search))
	}
	if !v.State.Category.IsAll() {
		parts = append(parts, string(v.State.Category))
	}
	parts = append(parts, v.State.Sort.Label())
	return strings.Join(parts, " | ")
}

func artistName(a model.Artwork) string {
	if a.ArtistName != "" {
		return a.ArtistName
	}
	return a.UserEmail
}

func categoryNames() string {
	names := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
