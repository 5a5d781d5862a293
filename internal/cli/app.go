package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/chalicecompass/internal/browser"
	"github.com/dmitrijs2005/chalicecompass/internal/config"
	"github.com/dmitrijs2005/chalicecompass/internal/gateway"
	"github.com/dmitrijs2005/chalicecompass/internal/logging"
	"github.com/dmitrijs2005/chalicecompass/internal/models"
	"github.com/dmitrijs2005/chalicecompass/internal/paths"
	"github.com/dmitrijs2005/chalicecompass/internal/repositories/dungeons"
	"github.com/dmitrijs2005/chalicecompass/internal/repositories/equipment"
	"github.com/dmitrijs2005/chalicecompass/internal/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	gw      *gateway.Gateway
	svc     services.DungeonService
	browser *browser.Browser
	out     io.Writer
	styles  detailStyles
}

// NewApp opens the configured database and builds the service stack on top
// of it. Output of the App's commands goes to out.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger, out io.Writer) (*App, error) {
	dir, err := paths.ResolveResourceDir(c.ResourceDir, c.PrimaryDB)
	if err != nil {
		return nil, fmt.Errorf("resolve resource dir: %w", err)
	}

	gw, err := gateway.New(ctx, paths.Candidates(dir, c.PrimaryDB, c.BackupDB), gateway.WithLogger(logger))
	if err != nil {
		logger.Error(ctx, "error opening database", "dir", dir, "error", err)
		return nil, err
	}
	logger.Debug(ctx, "database opened", "path", gw.Path())

	svc := services.NewDungeonService(dungeons.NewRepository(gw), equipment.NewRepository(gw), c.Statuses())
	b := browser.New(svc, browser.WithPromote(c.PromoteMatches), browser.WithLogger(logger))

	return &App{
		config:  c,
		logger:  logger,
		gw:      gw,
		svc:     svc,
		browser: b,
		out:     out,
		styles:  newDetailStyles(lipgloss.NewRenderer(out)),
	}, nil
}

// Close releases the database connection.
func (a *App) Close() error {
	return a.gw.Close()
}

func (a *App) getStatus() string {
	rows := len(a.browser.Rows())
	if term := a.browser.Term(); term != "" {
		return fmt.Sprintf("(%d rows, %q)", rows, term)
	}
	return fmt.Sprintf("(%d rows)", rows)
}

func (a *App) fail(ctx context.Context, msg string, err error) error {
	a.logger.Error(ctx, msg, "error", err)
	fmt.Fprintf(a.out, "error: %v\n", err)
	return err
}

func (a *App) List(ctx context.Context) error {
	if err := a.browser.Load(ctx); err != nil {
		return a.fail(ctx, "list failed", err)
	}
	return writeTable(a.out, a.browser.Rows())
}

func (a *App) Search(ctx context.Context, term string) error {
	if err := a.browser.Search(ctx, term); err != nil {
		return a.fail(ctx, "search failed", err)
	}
	return writeTable(a.out, a.browser.Rows())
}

func (a *App) Equip(ctx context.Context, name string) error {
	if err := a.browser.SearchEquipment(ctx, name); err != nil {
		return a.fail(ctx, "equipment search failed", err)
	}
	return writeTable(a.out, a.browser.Rows())
}

func (a *App) Like(ctx context.Context, term string) error {
	if err := a.browser.SearchEquipmentLike(ctx, term); err != nil {
		return a.fail(ctx, "equipment search failed", err)
	}
	return writeTable(a.out, a.browser.Rows())
}

func (a *App) Categories(ctx context.Context) error {
	cats, err := a.svc.Categories(ctx)
	if err != nil {
		return a.fail(ctx, "categories failed", err)
	}
	writeList(a.out, cats)
	return nil
}

func (a *App) Items(ctx context.Context, category string) error {
	items, err := a.svc.Items(ctx, category)
	if err != nil {
		return a.fail(ctx, "items failed", err)
	}
	writeList(a.out, items)
	return nil
}

// Show prints the detail of row n (1-based) of the current listing.
func (a *App) Show(ctx context.Context, n int) error {
	d := a.browser.Select(n - 1)
	a.styles.write(a.out, d)
	return nil
}

// Toggle flips the status of the shown row. Without one it does nothing.
func (a *App) Toggle(ctx context.Context) error {
	status, err := a.browser.ToggleStatus(ctx)
	if err != nil {
		return a.fail(ctx, "toggle failed", err)
	}
	if status == "" {
		return nil
	}
	a.styles.write(a.out, a.browser.Detail())
	return nil
}

func (a *App) Sort(ctx context.Context, column string) error {
	col := column
	for _, c := range models.Columns {
		if strings.EqualFold(c, column) {
			col = c
		}
	}
	if err := a.browser.SortBy(col); err != nil {
		return a.fail(ctx, "sort failed", err)
	}
	return writeTable(a.out, a.browser.Rows())
}

func (a *App) Reset(ctx context.Context) error {
	if err := a.browser.Reset(ctx); err != nil {
		return a.fail(ctx, "reset failed", err)
	}
	return writeTable(a.out, a.browser.Rows())
}

// ShowGlyph prints one dungeon's formatted notes without touching the list.
func (a *App) ShowGlyph(ctx context.Context, glyph string) error {
	d, err := a.svc.Get(ctx, glyph)
	if err != nil {
		return a.fail(ctx, "show failed", err)
	}
	fmt.Fprintf(a.out, "%s  %s  %s  %s\n", d.Glyph, d.Category, d.Status, d.Bosses)
	a.styles.write(a.out, noteDetail(d.Notes))
	return nil
}

// ToggleGlyph flips the status of one dungeon by glyph.
func (a *App) ToggleGlyph(ctx context.Context, glyph string) error {
	status, err := a.svc.ToggleStatus(ctx, glyph)
	if err != nil {
		return a.fail(ctx, "toggle failed", err)
	}
	a.logger.Info(ctx, "status toggled", "glyph", glyph, "status", status)
	fmt.Fprintf(a.out, "%s: Status updated to %s\n", glyph, status)
	return nil
}
