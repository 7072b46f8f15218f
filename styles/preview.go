// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Preview renders a small mock window using every style: a sidebar, a secondary button, a drop down list
// and its open menu with [selected] highlighted.
func (s Styles) Preview(items []string, selected int) string {
	sidebar := lipgloss.JoinVertical(lipgloss.Left,
		s.Sidebar.Render("Library"),
		s.Sidebar.Render("Settings"),
	)
	menuLines := make([]string, 0, len(items))
	for i, item := range items {
		if i == selected {
			menuLines = append(menuLines, s.MenuSelected.Render(" "+item+" "))
		} else {
			menuLines = append(menuLines, s.Menu.UnsetBorderStyle().Render(" "+item+" "))
		}
	}
	current := ""
	if selected >= 0 && selected < len(items) {
		current = items[selected]
	}
	list := lipgloss.JoinVertical(lipgloss.Left,
		s.List.Render(current+" ▾"),
		s.Menu.Render(lipgloss.JoinVertical(lipgloss.Left, menuLines...)),
	)
	status := lipgloss.JoinHorizontal(lipgloss.Top, s.Success.Render(" ok "), s.Danger.Render(" error "))
	body := lipgloss.JoinVertical(lipgloss.Left,
		s.Secondary.Render("Apply"),
		list,
		status,
	)
	return s.App.Render(lipgloss.JoinHorizontal(lipgloss.Top, sidebar, "  ", body))
}
