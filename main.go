package main

import "github.com/chaiyo/thaistatement/cmd"

func main() {
	cmd.Execute()
}
