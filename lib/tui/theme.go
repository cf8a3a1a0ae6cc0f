// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/tasklist/lib/task"
)

// Theme defines the color palette for the task viewer. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Cell under inline edit.
	EditBackground lipgloss.Color
	EditForeground lipgloss.Color

	// Priority colors.
	PriorityHigh   lipgloss.Color
	PriorityMedium lipgloss.Color
	PriorityLow    lipgloss.Color

	// Status colors.
	StatusActive    lipgloss.Color
	StatusCompleted lipgloss.Color
	StatusCancelled lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	AccentColor      lipgloss.Color

	// Status bar messages.
	ErrorForeground  lipgloss.Color
	NoticeForeground lipgloss.Color

	// Background tint for recently changed rows. HotAccentPut is used
	// for created and updated tasks; HotAccentRemove for deletions.
	HotAccentPut    lipgloss.Color
	HotAccentRemove lipgloss.Color

	// Background for characters matched by the fuzzy filter.
	SearchHighlightBackground lipgloss.Color

	// Modal and dropdown surfaces.
	OverlayForeground lipgloss.Color
	OverlayBackground lipgloss.Color
}

// PriorityColor returns the color for a priority. Unknown values
// return NormalText.
func (theme Theme) PriorityColor(priority task.Priority) lipgloss.Color {
	switch priority {
	case task.PriorityHigh:
		return theme.PriorityHigh
	case task.PriorityMedium:
		return theme.PriorityMedium
	case task.PriorityLow:
		return theme.PriorityLow
	default:
		return theme.NormalText
	}
}

// StatusColor returns the color for a status. Unknown values return
// FaintText.
func (theme Theme) StatusColor(status task.Status) lipgloss.Color {
	switch status {
	case task.StatusActive:
		return theme.StatusActive
	case task.StatusCompleted:
		return theme.StatusCompleted
	case task.StatusCancelled:
		return theme.StatusCancelled
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	EditBackground: lipgloss.Color("24"),  // dark blue
	EditForeground: lipgloss.Color("255"), // white

	PriorityHigh:   lipgloss.Color("196"), // bright red
	PriorityMedium: lipgloss.Color("214"), // amber
	PriorityLow:    lipgloss.Color("114"), // green

	StatusActive:    lipgloss.Color("75"),  // blue
	StatusCompleted: lipgloss.Color("114"), // green
	StatusCancelled: lipgloss.Color("245"), // gray

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
	AccentColor:      lipgloss.Color("220"),

	ErrorForeground:  lipgloss.Color("203"),
	NoticeForeground: lipgloss.Color("150"),

	HotAccentPut:    lipgloss.Color("58"),
	HotAccentRemove: lipgloss.Color("52"),

	SearchHighlightBackground: lipgloss.Color("58"),

	OverlayForeground: lipgloss.Color("252"),
	OverlayBackground: lipgloss.Color("237"),
}
