// Package tui is the full-screen terminal front end: a dungeon table, search
// and equipment pickers, action buttons, a highlighted detail pane and a
// status line.
package tui

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/chalicecompass/internal/browser"
	"github.com/dmitrijs2005/chalicecompass/internal/logging"
	"github.com/dmitrijs2005/chalicecompass/internal/models"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const helpText = " [black:gold]q[-:-] quit  [black:gold]tab/shift+tab[-:-] focus  [black:gold]enter[-:-] show  [black:gold]1-5/header click[-:-] sort column  [black:gold]t[-:-] toggle status  [black:gold]r[-:-] reset "

// Catalog lists equipment for the pickers.
type Catalog interface {
	Categories(ctx context.Context) ([]string, error)
	Items(ctx context.Context, category string) ([]string, error)
}

type UI struct {
	app     *tview.Application
	browser *browser.Browser
	catalog Catalog
	logger  logging.Logger
	ctx     context.Context

	table    *tview.Table
	search   *tview.InputField
	catDrop  *tview.DropDown
	itemDrop *tview.DropDown
	detail   *tview.TextView
	status   *tview.TextView

	focus    []tview.Primitive
	focusIdx int
}

func New(b *browser.Browser, catalog Catalog, logger logging.Logger) *UI {
	if logger == nil {
		logger = logging.Nop()
	}
	ui := &UI{
		app:     tview.NewApplication(),
		browser: b,
		catalog: catalog,
		logger:  logger,
		ctx:     context.Background(),
	}
	ui.build()
	return ui
}

// Run loads the list and blocks until the user quits.
func (ui *UI) Run() error {
	ui.reload(ui.browser.Load(ui.ctx))
	ui.loadCategories()
	return ui.app.Run()
}

// Stop ends Run.
func (ui *UI) Stop() { ui.app.Stop() }

func (ui *UI) build() {
	ui.table = tview.NewTable().SetFixed(1, 0).SetSelectable(true, false)
	ui.table.SetBorder(true).SetTitle(" Dungeons ")
	ui.table.SetSelectedFunc(func(row, _ int) { ui.selectRow(row) })
	ui.table.SetSelectionChangedFunc(func(row, _ int) { ui.selectRow(row) })

	ui.search = tview.NewInputField().SetLabel(" Search ").SetFieldWidth(0).SetPlaceholder("note text...")
	ui.search.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			ui.searchNotes()
		}
	})

	ui.catDrop = tview.NewDropDown().SetLabel(" Category ")
	ui.itemDrop = tview.NewDropDown().SetLabel(" Item ")
	for _, d := range []*tview.DropDown{ui.catDrop, ui.itemDrop} {
		d.SetFieldBackgroundColor(tcell.ColorBlack)
		d.SetFieldTextColor(tcell.ColorWhite)
		d.SetListStyles(
			tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
			tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGold),
		)
	}

	searchBtn := tview.NewButton("Search by String").SetSelectedFunc(ui.searchNotes)
	equipBtn := tview.NewButton("Search by Equipment").SetSelectedFunc(ui.searchEquipment)
	resetBtn := tview.NewButton("Reset").SetSelectedFunc(ui.reset)
	toggleBtn := tview.NewButton("Toggle Status").SetSelectedFunc(ui.toggleStatus)

	filters := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(ui.search, 0, 2, false).
		AddItem(ui.catDrop, 0, 1, false).
		AddItem(ui.itemDrop, 0, 1, false)

	buttons := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(searchBtn, 0, 1, false).
		AddItem(equipBtn, 0, 1, false).
		AddItem(resetBtn, 0, 1, false).
		AddItem(toggleBtn, 0, 1, false)

	ui.detail = tview.NewTextView().SetDynamicColors(true).SetWrap(true)
	ui.detail.SetBorder(true).SetTitle(" Notes ")

	ui.status = tview.NewTextView().SetDynamicColors(true).SetText(helpText)
	ui.status.SetBackgroundColor(tcell.ColorBlack)

	body := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(ui.table, 0, 3, true).
		AddItem(ui.detail, 0, 2, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(filters, 1, 0, false).
		AddItem(buttons, 1, 0, false).
		AddItem(body, 0, 1, true).
		AddItem(ui.status, 1, 0, false)

	ui.focus = []tview.Primitive{ui.table, ui.search, ui.catDrop, ui.itemDrop, searchBtn, equipBtn, resetBtn, toggleBtn, ui.detail}
	ui.app.SetRoot(root, true).EnableMouse(true)
	ui.app.SetFocus(ui.table)
	ui.app.SetInputCapture(ui.handleGlobalKeys)
}

func (ui *UI) handleGlobalKeys(ev *tcell.EventKey) *tcell.EventKey {
	_, focusIsInput := ui.app.GetFocus().(*tview.InputField)

	switch ev.Key() {
	case tcell.KeyCtrlC:
		ui.app.Stop()
		return nil
	case tcell.KeyTAB:
		ui.focusStep(1)
		return nil
	case tcell.KeyBacktab:
		ui.focusStep(-1)
		return nil
	case tcell.KeyEsc:
		if focusIsInput {
			ui.focusStep(-ui.focusIdx)
			return nil
		}
	}

	if focusIsInput || ev.Key() != tcell.KeyRune {
		return ev
	}

	switch r := ev.Rune(); r {
	case 'q':
		ui.app.Stop()
		return nil
	case 't':
		ui.toggleStatus()
		return nil
	case 'r':
		ui.reset()
		return nil
	case '1', '2', '3', '4', '5':
		ui.sortBy(models.Columns[r-'1'])
		return nil
	}
	return ev
}

func (ui *UI) focusStep(delta int) {
	n := len(ui.focus)
	ui.focusIdx = ((ui.focusIdx+delta)%n + n) % n
	ui.app.SetFocus(ui.focus[ui.focusIdx])
}

func (ui *UI) loadCategories() {
	cats, err := ui.catalog.Categories(ui.ctx)
	if err != nil {
		ui.showError(err)
		return
	}
	ui.catDrop.SetOptions(cats, func(text string, index int) {
		ui.loadItems(text, index)
	})
	ui.itemDrop.SetOptions(nil, nil)
}

func (ui *UI) loadItems(category string, index int) {
	if index < 0 || category == "" {
		ui.itemDrop.SetOptions(nil, nil)
		return
	}
	items, err := ui.catalog.Items(ui.ctx, category)
	if err != nil {
		ui.showError(err)
		return
	}
	ui.itemDrop.SetOptions(items, func(_ string, index int) {
		if index >= 0 {
			ui.searchEquipment()
		}
	})
}

func (ui *UI) searchNotes() {
	ui.reload(ui.browser.Search(ui.ctx, ui.search.GetText()))
	ui.renderDetail()
}

func (ui *UI) searchEquipment() {
	_, item := ui.itemDrop.GetCurrentOption()
	if item == "" {
		ui.setMessage("select a category and an item first")
		return
	}
	ui.reload(ui.browser.SearchEquipment(ui.ctx, item))
	ui.renderDetail()
}

func (ui *UI) toggleStatus() {
	glyph := ui.browser.Selected()
	status, err := ui.browser.ToggleStatus(ui.ctx)
	ui.reload(err)
	if err == nil && status != "" {
		ui.setMessage(fmt.Sprintf("%s is now %s", glyph, status))
	}
	ui.renderDetail()
}

func (ui *UI) reset() {
	ui.search.SetText("")
	ui.catDrop.SetCurrentOption(-1)
	ui.itemDrop.SetOptions(nil, nil)
	ui.reload(ui.browser.Reset(ui.ctx))
	ui.renderDetail()
}

func (ui *UI) sortBy(column string) {
	if err := ui.browser.SortBy(column); err != nil {
		ui.showError(err)
		return
	}
	ui.refreshTable()
}

// selectRow maps a table row onto the browser list; row 0 is the header.
func (ui *UI) selectRow(row int) {
	if row <= 0 {
		return
	}
	ui.browser.Select(row - 1)
	ui.renderDetail()
}

// reload redraws the table after a list-changing action and reports err.
func (ui *UI) reload(err error) {
	ui.refreshTable()
	if err != nil {
		ui.showError(err)
		return
	}
	ui.setMessage(fmt.Sprintf("%d dungeons", len(ui.browser.Rows())))
}

func (ui *UI) refreshTable() {
	ui.table.Clear()

	sorted, desc := ui.browser.SortState()
	for c, col := range models.Columns {
		cell := tview.NewTableCell(headerLabel(col, sorted, desc)).
			SetSelectable(false).
			SetAttributes(tcell.AttrBold).
			SetTextColor(tcell.ColorGold).
			SetClickedFunc(func() bool {
				ui.sortBy(col)
				return true
			})
		ui.table.SetCell(0, c, cell)
	}

	for r, row := range ui.browser.Rows() {
		for c, v := range row.Values() {
			cell := tview.NewTableCell(cellText(v)).SetMaxWidth(40)
			if c == len(models.Columns)-1 {
				cell.SetExpansion(1)
			}
			if row.Highlight {
				cell.SetTextColor(tcell.ColorYellow)
			}
			ui.table.SetCell(r+1, c, cell)
		}
	}
	ui.table.ScrollToBeginning()
}

func (ui *UI) renderDetail() {
	ui.detail.SetText(DetailMarkup(ui.browser.Detail()))
	ui.detail.ScrollToBeginning()
}

func (ui *UI) setMessage(msg string) {
	ui.status.SetText(helpText + "| " + tview.Escape(msg))
}

func (ui *UI) showError(err error) {
	ui.logger.Error(ui.ctx, "action failed", "error", err)
	ui.status.SetText(helpText + "| [red]error:[-] " + tview.Escape(err.Error()))
}
