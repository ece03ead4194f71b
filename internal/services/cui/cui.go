package cui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/jroimartin/gocui"

	"littlesearch/internal/lib/logger/sl"
	"littlesearch/internal/services/engine"
	"littlesearch/internal/storage/leveldb"
)

// CUI is the interactive query loop: two keywords in, up to topK ranked
// documents out. The index is read-only by the time the UI starts.
type CUI struct {
	ctx     context.Context
	cui     *gocui.Gui
	engine  *engine.Engine
	storage *leveldb.Storage
	log     *slog.Logger
	topK    int
}

func New(ctx context.Context, log *slog.Logger, eng *engine.Engine, storage *leveldb.Storage, topK int) *CUI {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		log.Error("Failed to create GUI:", "error", sl.Err(err))
		os.Exit(1)
	}
	return &CUI{
		ctx:     ctx,
		cui:     g,
		engine:  eng,
		storage: storage,
		log:     log,
		topK:    topK,
	}
}

func (c *CUI) Close() {
	c.cui.Close()
}

func (c *CUI) Start() error {
	c.cui.Cursor = true
	c.cui.SetManagerFunc(c.layout)
	defer c.cui.Close()

	if err := c.cui.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		c.log.Error("Failed to set keybinding:", "error", sl.Err(err))
	}
	if err := c.cui.SetKeybinding("input", gocui.KeyEnter, gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		return c.search(g, v)
	}); err != nil {
		c.log.Error("Failed to set keybinding:", "error", sl.Err(err))
	}
	if err := c.cui.SetKeybinding("output", gocui.KeyArrowDown, gocui.ModNone, scrollDown); err != nil {
		c.log.Error("Failed to set keybinding:", "error", sl.Err(err))
	}
	if err := c.cui.SetKeybinding("output", gocui.KeyArrowUp, gocui.ModNone, scrollUp); err != nil {
		c.log.Error("Failed to set keybinding:", "error", sl.Err(err))
	}
	if err := c.cui.SetKeybinding("topk", gocui.KeyEnter, gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		return c.setTopK(g, v)
	}); err != nil {
		c.log.Error("Failed to set keybinding:", "error", sl.Err(err))
	}

	if err := c.cui.SetKeybinding("", gocui.KeyTab, gocui.ModNone, func(g *gocui.Gui, v *gocui.View) error {
		currentView := g.CurrentView().Name()
		if currentView == "input" {
			_, _ = g.SetCurrentView("topk")
		} else if currentView == "topk" {
			_, _ = g.SetCurrentView("output")
		} else {
			_, _ = g.SetCurrentView("input")
		}
		return nil
	}); err != nil {
		c.log.Error("Failed to set keybinding:", "error", sl.Err(err))
	}

	if err := c.cui.MainLoop(); err != nil && err != gocui.ErrQuit {
		c.log.Error("Failed to run GUI:", "error", sl.Err(err))
	}

	return nil
}

func (c *CUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if maxX < 10 || maxY < 10 {
		return fmt.Errorf("terminal window is too small")
	}

	if v, err := g.SetView("input", 2, 2, maxX-2, 4); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Editable = true
		v.Title = "Keywords (two, \"or\" query)"
		_, _ = g.SetCurrentView("input")
	}

	if v, err := g.SetView("topk", 2, 5, maxX/4, 7); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Editable = true
		v.Title = "Max Results"
		fmt.Fprintf(v, "%d", c.topK)
	}

	if v, err := g.SetView("time", maxX/4+1, 5, maxX-2, 7); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Timing"
		v.Wrap = true
	}

	if v, err := g.SetView("output", 2, 8, maxX-2, maxY-2); err != nil {
		if !errors.Is(err, gocui.ErrUnknownView) {
			return err
		}
		v.Title = "Results"
		v.Wrap = true
	}

	return nil
}

func (c *CUI) setTopK(g *gocui.Gui, v *gocui.View) error {
	topKStr := strings.TrimSpace(v.Buffer())
	if topKInt, err := strconv.Atoi(topKStr); err == nil && topKInt > 0 {
		c.topK = topKInt
	}
	return nil
}

func (c *CUI) search(g *gocui.Gui, v *gocui.View) error {
	query := strings.TrimSpace(v.Buffer())
	kw1, kw2 := splitQuery(query)

	result, err := c.engine.Search(c.ctx, kw1, kw2, c.topK)
	if err != nil {
		return err
	}

	timeView, err := g.View("time")
	if err != nil {
		return err
	}
	timeView.Clear()
	for phase, duration := range result.Timings {
		fmt.Fprintf(timeView, "\033[32m%s: %s\033[0m ", phase, duration)
	}

	outputView, err := g.View("output")
	if err != nil {
		return err
	}
	outputView.Clear()

	if result.Documents == nil {
		fmt.Fprintln(outputView, "No matching documents")
		_, _ = g.SetCurrentView("input")
		return nil
	}

	fmt.Fprintf(outputView, "\033[33mTotal Results Count: %d\033[0m\n\n", result.TotalResultsCount)

	for i, docID := range result.Documents {
		fmt.Fprintf(outputView, "\033[32m%d. %s\033[0m\n", i+1, docID)

		content, err := c.storage.GetDocument(c.ctx, docID)
		if err != nil {
			c.log.Error("Failed to get document from storage:", "error", sl.Err(err))
			continue
		}
		fmt.Fprintf(outputView, "%s\n\n", content)
	}

	_, _ = g.SetCurrentView("input")
	return nil
}

// splitQuery takes the first two whitespace-separated keywords of the query.
// A single-keyword query leaves the second empty, which matches nothing.
func splitQuery(query string) (string, string) {
	words := strings.Fields(query)
	switch len(words) {
	case 0:
		return "", ""
	case 1:
		return words[0], ""
	default:
		return words[0], words[1]
	}
}

func scrollDown(g *gocui.Gui, v *gocui.View) error {
	_, oy := v.Origin()
	_, sy := v.Size()

	lines := len(v.BufferLines())

	if oy+sy < lines {
		v.SetOrigin(0, oy+1)
	}
	return nil
}

func scrollUp(g *gocui.Gui, v *gocui.View) error {
	_, oy := v.Origin()
	if oy > 0 {
		v.SetOrigin(0, oy-1)
	}
	return nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}
