package main

import "keptn/promotion-formatter/cmd"

func main() {
	cmd.Execute()
}
