package main

import "github.com/blaketorres2000-2/verlander-analysis/cmd"

func main() {
	cmd.Execute()
}
