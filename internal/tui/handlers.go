package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func handleKey(m *model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ev := m.keys.Event(msg)
	if ev == EventQuit {
		return *m, tea.Quit
	}
	// Input is dropped while a load is in flight so it cannot act on the
	// screen the load is about to replace.
	if m.loading || ev == EventNone {
		return *m, nil
	}

	if req, ok := m.ctrl.Request(ev); ok {
		m.loading = true
		m.logger.Debug("load started", "load", req.kind, "id", req.id)
		return *m, tea.Batch(fetchCmd(m.ctx, m.ctrl, req), m.spinner.Tick)
	}
	m.ctrl.Apply(ev)
	return *m, nil
}

func handleLoaded(m *model, msg loadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	notice, err := m.ctrl.Complete(msg.result)
	if err != nil {
		m.logger.Error("load failed", "load", msg.result.Request.kind, "error", err)
		m.err = err
		return *m, tea.Quit
	}
	if notice != "" {
		m.toast = newToast(notice)
		return *m, toastExpireCmd()
	}
	return *m, nil
}
