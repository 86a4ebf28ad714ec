package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	CodeColor    = color.New(color.FgWhite).SprintFunc()   // For ssh config snippets
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For paths and other secondary details
)

// Machine Specific Colors
var (
	AliasNameColor = color.New(color.FgYellow).SprintFunc()
	ProviderColor  = color.New(color.FgBlue, color.Bold).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)
