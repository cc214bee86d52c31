package tui

import (
	"fmt"
	"strings"

	"github.com/fahim1105/seu-matrimony/internal/notify"
	"github.com/fahim1105/seu-matrimony/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func (m model) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder

	b.WriteString(renderSyncIndicator(m.status, m.spinner.View()))
	b.WriteString("\n\n")

	if len(m.pending) == 0 {
		b.WriteString(helpStyle.Render("no queued requests"))
		b.WriteString("\n")
	}
	for i, p := range m.pending {
		line := fmt.Sprintf("%-40s %s  %s", fitText(p.ReceiverEmail, 40), syncedLabel(p), fitText(p.ID, 24))
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.composing {
		b.WriteString("\nsend to: ")
		b.WriteString(m.receiver.View())
		b.WriteString("\n")
	}

	if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(successStyle.Render(m.statusLine))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	if len(m.toasts) > 0 {
		b.WriteString("\n")
		for _, t := range m.toasts {
			b.WriteString(renderToast(t))
			b.WriteString("\n")
		}
	}

	hotKeys := "n: new  d: cancel  s: sync  c: copy id  r: refresh  v: version  L: logout  q: quit"
	if m.composing {
		hotKeys = "enter: send  esc: back"
	}

	return appStyle.Render(renderPage("Connection requests · "+m.identity, b.String(), hotKeys))
}

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")
	b.WriteString(strings.TrimRight(data, "\n"))
	b.WriteString("\n\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(hotKeys))

	return b.String()
}

func renderSyncIndicator(s models.SyncSnapshot, spin string) string {
	state := "idle"
	if s.IsSyncing {
		state = spin + " syncing"
	}

	auto := "off"
	if s.HasAutoSync {
		auto = "on"
	}

	return fmt.Sprintf("sync: %s · pending: %d · auto: %s", state, s.PendingCount, auto)
}

func renderToast(t notify.Toast) string {
	line := t.At.Format("15:04:05") + " " + t.Message
	switch t.Level {
	case notify.LevelError:
		return errorStyle.Render(line)
	case notify.LevelSuccess:
		return successStyle.Render(line)
	case notify.LevelInfo, notify.LevelLoading:
		return infoStyle.Render(line)
	default:
		return line
	}
}

func syncedLabel(p models.PendingRequest) string {
	if p.Synced {
		return "synced "
	}
	return "pending"
}

func renderBuildInfoWindow(info models.BuildInfo) string {
	data := "Application: SEU Matrimony sync client\n" + info.String()
	return overlayBoxStyle.Render(renderPage("ABOUT", data, "esc: back"))
}

func fitText(v string, n int) string {
	if n <= 0 || len(v) <= n {
		return v
	}
	if n <= 3 {
		return v[:n]
	}
	return v[:n-3] + "..."
}
