package main

import "delivery-route-optimizer/internal/cli"

func main() {
	cli.Execute()
}
