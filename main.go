package main

import "github.com/bridgetgarnier/1Delongation/cmd"

func main() {
	cmd.Execute()
}
