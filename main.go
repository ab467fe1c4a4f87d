package main

import "github.com/devon-mar/linkheader/cmd"

func main() {
	cmd.Execute()
}
