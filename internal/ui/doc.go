// Package ui groups the terminal presentation of hooksmith.
//
//   - styles: colors and themes (lipgloss)
//   - static: non-interactive output such as the status table
//   - prompt: interactive prompts (bubbletea), used only on a terminal
package ui
