package main

import "github.com/skel-dev/skel/internal/cli"

func main() {
	cli.Execute()
}
