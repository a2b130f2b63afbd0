package main

import "github.com/chrimar3/agent-athens/internal/cli"

func main() {
	cli.Execute()
}
