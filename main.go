// Package main is the entry point for the pushup CLI.
package main

import "pushup.dev/pkg/pushup/cmd"

func main() {
	cmd.Execute()
}
