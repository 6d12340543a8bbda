// Package ui provides theme and color support for the application's output.
// It defines color schemes and provides ANSI escape code accessors for
// consistent styling across the console and TUI presentation layers.
//
// This package is designed to be a shared dependency for packages that need
// color output, reducing coupling between sampling logic and presentation.
package ui
