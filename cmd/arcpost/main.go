// Command arcpost is the CLI surface spec.md §6 describes: a thin wrapper
// over internal/app that maps its typed errors to the contract's exit
// codes.
package main

import "github.com/arcpost/arcpost/cmd/arcpost/commands"

func main() {
	commands.Execute()
}
