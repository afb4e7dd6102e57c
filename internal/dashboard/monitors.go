package dashboard

import (
	"maps"
	"slices"

	"worldmonitor/internal/monitor"
	"worldmonitor/internal/news"
)

// Monitors returns the monitor list.
func (d *Dashboard) Monitors() monitor.List {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.monitors.Clone()
}

// MonitorResults returns the matches of every monitor.
func (d *Dashboard) MonitorResults() monitor.Results {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(monitor.Results, len(d.matches))
	for id, items := range d.matches {
		out[id] = slices.Clone(items)
	}
	return out
}

// AddMonitor creates a monitor from a comma separated keyword list. An
// empty color picks the next default.
func (d *Dashboard) AddMonitor(keywords, color string) (monitor.Monitor, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if color == "" {
		color = d.monitors.NextColor()
	}
	m, err := monitor.New(keywords, color)
	if err != nil {
		return monitor.Monitor{}, err
	}
	list, err := d.monitors.Add(m)
	if err != nil {
		return monitor.Monitor{}, err
	}
	return m, d.setMonitors(list, m.ID)
}

// UpdateMonitor replaces a monitor's keywords (and color, if non-empty).
func (d *Dashboard) UpdateMonitor(id, keywords, color string) (monitor.Monitor, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	kw := monitor.ParseKeywords(keywords)
	list, err := d.monitors.Update(id, kw, color)
	if err != nil {
		return monitor.Monitor{}, err
	}
	m := list[list.Find(id)]
	return m, d.setMonitors(list, id)
}

// RemoveMonitor deletes a monitor.
func (d *Dashboard) RemoveMonitor(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	list, err := d.monitors.Remove(id)
	if err != nil {
		return err
	}
	return d.setMonitors(list, id)
}

// setMonitors installs list, re-evaluates the changed monitor against the
// latest news and persists. Other monitors keep their results untouched.
// Callers hold mu.
func (d *Dashboard) setMonitors(list monitor.List, changed string) error {
	d.monitors = list
	matches := maps.Clone(d.matches)
	if matches == nil {
		matches = make(monitor.Results)
	}
	delete(matches, changed)
	if i := list.Find(changed); i >= 0 {
		matches[changed] = monitor.EvaluateOne(list[i], d.allNews)
	}
	d.matches = matches
	return saveErr("monitors", d.store.SaveMonitors(list))
}

// Reevaluate runs every monitor over the latest news.
func (d *Dashboard) Reevaluate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.matches = monitor.Evaluate(d.monitors, d.allNews)
}

// evaluateAll is used when the whole news set changes. Callers hold mu.
func (d *Dashboard) evaluateAll(items []news.Item) {
	d.matches = monitor.Evaluate(d.monitors, items)
}
