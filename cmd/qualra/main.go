// Command qualra is a CLI for loading, validating, and reasoning over
// qualitative constraint networks: Allen's interval algebra and its
// point/branching-time relatives, and RCC-8.
//
// Usage:
//
//	qualra [flags] <command>
//
// Run `qualra <command> --help` for details on an individual command.
package main

func main() {
	Execute()
}
