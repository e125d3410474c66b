package main

import "github.com/atikulmunna/agribot/internal/cmd"

func main() {
	cmd.Execute()
}
