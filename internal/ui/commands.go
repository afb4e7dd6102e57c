package ui

import (
	"slices"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"worldmonitor/internal/news"
	"worldmonitor/internal/refresh"
)

// clockCmd ticks the header clock once a second.
func clockCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

// scheduleGroup arms the next periodic refresh of g. Groups without an
// interval run only at startup and on manual refresh.
func (a *App) scheduleGroup(g refresh.Group) tea.Cmd {
	interval := a.sched.Intervals[g]
	if interval <= 0 {
		return nil
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return groupTickMsg{Group: g}
	})
}

// runGroup starts one refresh of g. News categories are fetched one after
// another; every other fetch runs concurrently and reports on its own.
func (a *App) runGroup(g refresh.Group) tea.Cmd {
	a.logEvent(refresh.Event{Group: g, Key: string(g), State: refresh.StateRunning, Message: "refresh started"})
	if g == refresh.GroupNews {
		a.pending++
		if a.sched.NewsCategories() == 0 {
			return a.finishNewsPass(nil, nil)
		}
		return a.newsStep(0, nil, nil)
	}
	jobs := a.sched.Jobs(g)
	a.pending += len(jobs)
	var cmds []tea.Cmd
	for _, job := range jobs {
		cmds = append(cmds, func() tea.Msg {
			return resultMsg{Result: job(a.ctx)}
		})
	}
	return tea.Batch(cmds...)
}

// newsStep fetches category i of a pass.
func (a *App) newsStep(i int, acc []news.Item, failed []string) tea.Cmd {
	return func() tea.Msg {
		return newsStepMsg{Result: a.sched.NewsStep(a.ctx, i), acc: acc, failed: failed}
	}
}

// handleNewsStep applies one category and chains the next, closing the pass
// after the last one.
func (a *App) handleNewsStep(msg newsStepMsg) tea.Cmd {
	r := msg.Result
	a.apply(r)
	acc, failed := msg.acc, msg.failed
	if r.Err != nil {
		failed = append(slices.Clip(failed), r.Category)
	} else {
		acc = append(slices.Clip(acc), r.Items...)
	}
	if r.Index+1 < r.Total {
		return a.newsStep(r.Index+1, acc, failed)
	}
	return a.finishNewsPass(acc, failed)
}

func (a *App) finishNewsPass(acc []news.Item, failed []string) tea.Cmd {
	return func() tea.Msg {
		return resultMsg{Result: a.sched.FinishNewsPass(acc, failed)}
	}
}

// startSpinner starts the header spinner unless it is already ticking.
func (a *App) startSpinner() tea.Cmd {
	if a.spinning || a.pending <= 0 {
		return nil
	}
	a.spinning = true
	return a.spinner.Tick
}
