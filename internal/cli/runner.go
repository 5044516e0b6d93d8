package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/ferhatb/itemls/internal/config"
	"github.com/ferhatb/itemls/internal/fetch"
	"github.com/ferhatb/itemls/internal/logger"
	"github.com/ferhatb/itemls/internal/model"
	"github.com/ferhatb/itemls/internal/pager"
	"github.com/ferhatb/itemls/internal/store/cachestore"
	"github.com/ferhatb/itemls/internal/tui"
	"github.com/ferhatb/itemls/internal/ui"
)

// Options tune behavior from root flags.
type Options struct {
	ConfigPath string // --config
	Endpoint   string // --endpoint, overrides config
	PageSize   int    // --size, overrides config
	Cached     bool   // --cached: read the last snapshot instead of fetching
	NoClamp    bool   // --no-clamp: let "next" walk past the last page
	Verbose    bool   // --verbose: debug logging
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		PrintHelp()
		return 2
	}
	cmd, a := args[0], args[1:]

	if cmd == "help" || cmd == "-h" || cmd == "--help" {
		PrintHelp()
		return 0
	}

	cfg, log, err := setup(opt)
	if err != nil {
		ui.Fail(err.Error())
		return 1
	}

	switch cmd {
	case "ls":
		page := 1
		if len(a) > 1 {
			ui.Fail("usage: itemls ls [page]")
			return 2
		}
		if len(a) == 1 {
			n, err := strconv.Atoi(a[0])
			if err != nil || n < 1 {
				ui.Fail("ls: not a valid page number: " + a[0])
				return 2
			}
			page = n
		}
		return doList(cfg, log, opt, page)

	case "browse":
		if len(a) != 0 {
			ui.Fail("usage: itemls browse")
			return 2
		}
		return doBrowse(cfg, log, opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`itemls - browse a remote item list page by page

Usage:
  itemls [flags] <subcommand> [args]

Subcommands:
  ls [page]      Fetch the list and print the given page (default 1)
  browse         Interactive browser (←/→ to change pages, q to quit)
  help           Show this help

Flags:
  -config path   Config file (yaml); ITEMLS_* env vars override it
  -endpoint url  Fetch from this URL instead of the configured one
  -size n        Items per page
  -cached        Use the last fetched snapshot, skip the network
  -no-clamp      Keep "next" available past the last page
  -verbose       Debug logging on stderr

Examples:
  itemls ls
  itemls ls 3
  itemls -size 10 browse
`)
}

// setup loads config, applies flag overrides and builds the logger.
func setup(opt Options) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(opt.ConfigPath)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("config: %w", err)
	}
	if opt.Endpoint != "" {
		cfg.Endpoint = opt.Endpoint
	}
	if opt.PageSize > 0 {
		cfg.PageSize = opt.PageSize
	}
	if opt.Verbose {
		cfg.Logger.Level = "debug"
	}
	log, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("logger: %w", err)
	}
	return cfg, log, nil
}

// loadItems fetches from the network (refreshing the snapshot) or reads the
// snapshot when opt.Cached is set.
func loadItems(cfg *config.Config, log zerolog.Logger, opt Options) ([]model.Item, error) {
	store := cachestore.New("")
	if opt.Cached {
		return store.Load()
	}
	client := fetch.New(cfg.Endpoint, cfg.Timeout, log)
	items, err := client.Items(context.Background())
	if err != nil {
		return nil, err
	}
	if err := store.Save(items); err != nil {
		// The snapshot is a convenience; a failed write shouldn't sink `ls`.
		log.Warn().Err(err).Msg("could not write snapshot")
	}
	return items, nil
}

// -------------- subcommand impls ----------------

func doList(cfg *config.Config, log zerolog.Logger, opt Options, page int) int {
	items, err := loadItems(cfg, log, opt)
	if err != nil {
		ui.Fail("fetch: " + fetch.Describe(err))
		return 1
	}
	if opt.Cached && len(items) == 0 {
		ui.Fail("no cached items; run `itemls ls` without -cached first")
		return 1
	}

	p := pager.New(items, cfg.PageSize,
		pager.WithPage(page),
		pager.WithClamp(!opt.NoClamp),
	)
	ui.Panel(PageLines(p))
	return 0
}

func doBrowse(cfg *config.Config, log zerolog.Logger, opt Options) int {
	if err := tui.Browse(cfg, log, tui.Options{
		Cached:  opt.Cached,
		NoClamp: opt.NoClamp,
	}); err != nil {
		ui.Fail("browse: " + err.Error())
		return 1
	}
	return 0
}

// -------------- rendering helpers --------------

// PageLines renders one page as panel lines: header, rows, pagination footer.
func PageLines(p *pager.Pager) []string {
	header := fmt.Sprintf("%s  %s %d",
		ui.TitleStyle.Render("Items"),
		ui.AccentStyle.Render("Total"), p.Len(),
	)

	lines := []string{header, ""}
	lines = append(lines, rowLines(p)...)
	lines = append(lines, "", footerLine(p))
	return lines
}

func rowLines(p *pager.Pager) []string {
	w := p.Window()
	if len(w) == 0 {
		return []string{ui.MutedStyle.Render("no items")}
	}
	first, _ := p.Bounds()
	out := make([]string, 0, len(w))
	for i, it := range w {
		idx := fmt.Sprintf("%3d.", first+i)
		out = append(out, fmt.Sprintf("%s %s",
			ui.MutedStyle.Render(idx), ui.Truncate(it.Title, 80)))
	}
	return out
}

func footerLine(p *pager.Pager) string {
	total := p.TotalPages()
	pos := fmt.Sprintf("page %d/%d", p.Page(), total)
	if first, last := p.Bounds(); first > 0 {
		pos += fmt.Sprintf(" · items %d–%d of %d", first, last, p.Len())
	}

	prev, next := "← prev", "next →"
	if !p.HasPrev() {
		prev = ui.MutedStyle.Render(prev)
	}
	if !p.HasNext() {
		next = ui.MutedStyle.Render(next)
	}
	return fmt.Sprintf("%s   %s  %s", ui.HelpStyle.Render(pos), prev, next)
}
