package main

import "github.com/KaramelBytes/sheetstat/cmd"

func main() {
	cmd.Execute()
}
