// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package themes

import (
	"github.com/Lexer747/oceania-theme/colour"
	"github.com/Lexer747/oceania-theme/utils/sliceutils"
)

type Swatch struct {
	Name   string
	Colour colour.RGB
}

type Role struct {
	Name     string
	Swatches []Swatch
}

// Roles flattens the theme into named groups of colours, in the order they should be shown to a user.
func (r Resolved) Roles() []Role {
	button := func(name string, b Button) Role {
		return Role{Name: name, Swatches: []Swatch{
			{"Text", b.Text}, {"Background", b.Background}, {"Border", b.Border},
		}}
	}
	return []Role{
		{Name: "Application", Swatches: []Swatch{
			{"Background", r.Application.Background},
			{"Text", r.Application.Text},
			{"Primary", r.Application.Primary},
			{"Success", r.Application.Success},
			{"Danger", r.Application.Danger},
		}},
		button("Secondary", r.Secondary),
		button("Sidebar", r.Sidebar),
		{Name: "List", Swatches: []Swatch{
			{"Text", r.List.Text},
			{"Background", r.List.Background},
			{"Handle", r.List.Handle},
			{"Border", r.List.Border},
		}},
		{Name: "Menu", Swatches: []Swatch{
			{"Text", r.List.Menu.Text},
			{"Background", r.List.Menu.Background},
			{"Border", r.List.Menu.Border},
			{"SelectedText", r.List.Menu.SelectedText},
			{"SelectedBackground", r.List.Menu.SelectedBackground},
		}},
		{Name: "Accents", Swatches: []Swatch{
			{"Red", r.Accents.Red},
			{"Orange", r.Accents.Orange},
			{"Yellow", r.Accents.Yellow},
			{"Green", r.Accents.Green},
			{"Blue", r.Accents.Blue},
			{"Purple", r.Accents.Purple},
			{"Pink", r.Accents.Pink},
		}},
	}
}

// Describe gives one line per role listing every colour as hex, when [truecolour] is set each hex value is
// drawn on a block of its own colour in whichever of black or white stays readable.
func (r Resolved) Describe(truecolour bool) []string {
	return sliceutils.Map(r.Roles(), func(role Role) string {
		return "\t- " + role.Name + " |" + sliceutils.JoinFunc(role.Swatches, func(s Swatch) string {
			return " " + s.Name + ":" + s.render(truecolour)
		}, "")
	})
}

func (s Swatch) render(truecolour bool) string {
	if !truecolour {
		return s.Colour.String()
	}
	label := " " + s.Colour.String() + " "
	return s.Colour.Fill(s.Colour.Contrast().Paint(label))
}
