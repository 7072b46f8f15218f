// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// Package styles adapts a [themes.Resolved] to lipgloss styles for terminal front ends. It holds no logic of
// its own, every colour comes straight from a role.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Lexer747/oceania-theme/colour"
	"github.com/Lexer747/oceania-theme/themes"
)

// Styles is one lipgloss style per role.
type Styles struct {
	App          lipgloss.Style
	Secondary    lipgloss.Style
	Sidebar      lipgloss.Style
	List         lipgloss.Style
	Menu         lipgloss.Style
	MenuSelected lipgloss.Style
	Success      lipgloss.Style
	Danger       lipgloss.Style
}

func New(r themes.Resolved) Styles {
	return Styles{
		App:          lipgloss.NewStyle().Foreground(Color(r.Application.Text)).Background(Color(r.Application.Background)),
		Secondary:    Button(r.Secondary),
		Sidebar:      Button(r.Sidebar),
		List:         List(r.List),
		Menu:         Menu(r.List.Menu),
		MenuSelected: MenuSelected(r.List.Menu),
		Success:      lipgloss.NewStyle().Foreground(Color(r.Application.Success)).Background(Color(r.Application.Background)),
		Danger:       lipgloss.NewStyle().Foreground(Color(r.Application.Danger)).Background(Color(r.Application.Background)),
	}
}

// Color is the lipgloss hex form of [c].
func Color(c colour.RGB) lipgloss.Color {
	return lipgloss.Color("#" + colour.Encode(c))
}

// border picks the closest terminal border for a toolkit border, cells can't draw sub-character widths so
// any width gives a single line and only a large radius gives rounded corners.
func border(width, radius float32) (lipgloss.Border, bool) {
	if width <= 0 {
		return lipgloss.Border{}, false
	}
	if radius >= 4 {
		return lipgloss.RoundedBorder(), true
	}
	return lipgloss.NormalBorder(), true
}

func Button(b themes.Button) lipgloss.Style {
	s := lipgloss.NewStyle().
		Foreground(Color(b.Text)).
		Background(Color(b.Background)).
		Padding(0, 1)
	if bs, ok := border(b.BorderWidth, b.BorderRadius); ok {
		s = s.Border(bs).BorderForeground(Color(b.Border))
	}
	return s
}

func List(l themes.List) lipgloss.Style {
	s := lipgloss.NewStyle().
		Foreground(Color(l.Text)).
		Background(Color(l.Background)).
		Padding(0, 1)
	if bs, ok := border(l.BorderWidth, l.BorderRadius); ok {
		s = s.Border(bs).BorderForeground(Color(l.Border))
	}
	return s
}

func Menu(m themes.Menu) lipgloss.Style {
	s := lipgloss.NewStyle().
		Foreground(Color(m.Text)).
		Background(Color(m.Background))
	if bs, ok := border(m.BorderWidth, m.BorderRadius); ok {
		s = s.Border(bs).BorderForeground(Color(m.Border))
	}
	return s
}

// MenuSelected is the highlighted entry inside a [Menu], it has no border of its own.
func MenuSelected(m themes.Menu) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Color(m.SelectedText)).
		Background(Color(m.SelectedBackground))
}
