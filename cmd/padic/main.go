package main

import "github.com/calebcase/padic/internal/cmd"

func main() {
	cmd.Execute()
}
