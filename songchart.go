package main

import "github.com/perahi/songchart/cmd"

func main() {
	cmd.Execute()
}
