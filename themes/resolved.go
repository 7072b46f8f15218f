// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package themes

import (
	"github.com/Lexer747/oceania-theme/colour"
	"github.com/Lexer747/oceania-theme/utils/errors"
)

// Resolved is a palette after every colour has been decoded and assigned a semantic role. It is what a
// widget toolkit consumes:
//
//   - [Application] is the palette of the whole window.
//   - [Button] roles are used by the secondary buttons and by the sidebar.
//   - [List] is the drop down list, with its popup [Menu].
//   - [Accents] keeps every accent colour of the palette, including those no role uses yet.
//
// A Resolved is a plain value, copying it copies every role.
type Resolved struct {
	Application Application
	Secondary   Button
	Sidebar     Button
	List        List
	Accents     Accents
}

type Application struct {
	Background colour.RGB
	Text       colour.RGB
	Primary    colour.RGB
	Success    colour.RGB
	Danger     colour.RGB
}

type Vector struct {
	X, Y float32
}

type Button struct {
	Text         colour.RGB
	Background   colour.RGB
	Border       colour.RGB
	BorderWidth  float32
	BorderRadius float32
	ShadowOffset Vector
}

type List struct {
	Text       colour.RGB
	Background colour.RGB
	// Handle is the drop down arrow.
	Handle       colour.RGB
	Placeholder  colour.RGB
	Border       colour.RGB
	BorderWidth  float32
	BorderRadius float32
	Menu         Menu
}

type Menu struct {
	Text               colour.RGB
	Background         colour.RGB
	Border             colour.RGB
	BorderWidth        float32
	BorderRadius       float32
	SelectedText       colour.RGB
	SelectedBackground colour.RGB
}

type Accents struct {
	Red    colour.RGB
	Orange colour.RGB
	Yellow colour.RGB
	Green  colour.RGB
	Blue   colour.RGB
	Purple colour.RGB
	Pink   colour.RGB
}

const (
	buttonBorderRadius = 2.0
	listBorderWidth    = 2.0
	listBorderRadius   = 5.0
)

// placeholder text in an empty list is deliberately loud, it should never be seen.
var placeholder = colour.RGB{R: 0xFF}

// Resolve decodes every colour of [p] and lays them out as roles. It never touches the filesystem. Every
// colour which fails to decode is reported, not just the first, and the error will match [colour.ErrFormat].
func Resolve(p Palette) (Resolved, error) {
	var bg1, bg2, bg3, text, red, orange, yellow, green, blue, purple, pink colour.RGB
	targets := []*colour.RGB{&bg1, &bg2, &bg3, &text, &red, &orange, &yellow, &green, &blue, &purple, &pink}

	errs := []error{}
	for i, entry := range p.entries() {
		c, err := colour.Decode(entry.hex)
		errs = append(errs, errors.Wrap(err, entry.key))
		*targets[i] = c
	}
	if err := errors.Join(errs...); err != nil {
		return Resolved{}, errors.Wrap(err, "Couldn't resolve palette, colours had errors")
	}

	return Resolved{
		Application: Application{
			Background: bg1,
			Text:       text,
			Primary:    blue,
			Success:    green,
			Danger:     red,
		},
		Secondary: Button{
			Text:         text,
			Background:   bg3,
			Border:       colour.Black,
			BorderRadius: buttonBorderRadius,
		},
		Sidebar: Button{
			Text:         text,
			Background:   bg2,
			Border:       colour.Black,
			BorderRadius: buttonBorderRadius,
		},
		List: List{
			Text:         text,
			Background:   bg3,
			Handle:       text,
			Placeholder:  placeholder,
			Border:       text,
			BorderWidth:  listBorderWidth,
			BorderRadius: listBorderRadius,
			Menu: Menu{
				Text:               text,
				Background:         bg3,
				Border:             text,
				BorderWidth:        listBorderWidth,
				BorderRadius:       listBorderRadius,
				SelectedText:       text,
				SelectedBackground: blue,
			},
		},
		Accents: Accents{
			Red:    red,
			Orange: orange,
			Yellow: yellow,
			Green:  green,
			Blue:   blue,
			Purple: purple,
			Pink:   pink,
		},
	}, nil
}

func (r Resolved) String() string {
	return "{" +
		"background: " + r.Application.Background.String() + " " +
		"text: " + r.Application.Text.String() + " " +
		"primary: " + r.Application.Primary.String() + " " +
		"success: " + r.Application.Success.String() + " " +
		"danger: " + r.Application.Danger.String() +
		"}"
}
