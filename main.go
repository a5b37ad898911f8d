package main

import "github.com/dwislpy/dwislpyc/cmd"

func main() {
	cmd.Execute()
}
