// Package ui provides formatted output utilities for the CLI.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Color functions for consistent styling.
var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Blue   = color.New(color.FgBlue).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc() // Dimmed text (more readable than gray)
	Bold   = color.New(color.Bold).SprintFunc()
)

// Output is the destination for UI output.
// Defaults to os.Stderr because stdout carries signed and recovered
// message bytes. Can be overridden for testing.
var Output io.Writer = os.Stderr

// PrintSuccess prints a success message with green checkmark.
func PrintSuccess(message string) {
	fmt.Fprintf(Output, "%s %s\n", Green("✓"), message)
}

// PrintError prints an error message with red X.
func PrintError(message string) {
	fmt.Fprintf(Output, "%s %s\n", Red("✗"), message)
}

// PrintWarning prints a warning message with yellow exclamation.
func PrintWarning(message string) {
	fmt.Fprintf(Output, "%s %s\n", Yellow("⚠"), message)
}

// PrintInfo prints an info message with blue dot.
func PrintInfo(message string) {
	fmt.Fprintf(Output, "%s %s\n", Blue("•"), message)
}

// KeyDetails describes a key pair for display. It never carries secret
// key material.
type KeyDetails struct {
	Level       string
	PublicPath  string
	SecretPath  string
	Fingerprint string
	PublicKey   string // base64, optional
}

// PrintKeyDetails prints key pair information in a formatted style.
func PrintKeyDetails(k KeyDetails) {
	fmt.Fprintf(Output, "%s %s\n", Bold("Level:"), Cyan(k.Level))
	if k.PublicPath != "" {
		fmt.Fprintf(Output, "%s %s\n", Bold("Public key:"), Blue(k.PublicPath))
	}
	if k.SecretPath != "" {
		fmt.Fprintf(Output, "%s %s %s\n", Bold("Secret key:"), Blue(k.SecretPath), Dim("(0600)"))
	}
	fmt.Fprintf(Output, "%s %s\n", Bold("Fingerprint:"), Yellow(k.Fingerprint))
	if k.PublicKey != "" {
		fmt.Fprintf(Output, "%s\n%s\n", Bold("Public key (base64):"), Dim(k.PublicKey))
	}
}

// PathEntry is one labeled path for PrintPaths.
type PathEntry struct {
	Label  string
	Path   string
	Exists bool
}

// PrintPaths prints labeled paths with an existence marker.
func PrintPaths(entries []PathEntry) {
	for _, e := range entries {
		marker := Dim("(missing)")
		if e.Exists {
			marker = Green("✓")
		}
		fmt.Fprintf(Output, "%s %s %s\n", Bold(e.Label+":"), e.Path, marker)
	}
}
