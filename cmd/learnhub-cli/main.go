package main

import "github.com/nfrund/learnhub/cmd/learnhub-cli/cmd"

func main() {
	cmd.Execute()
}
