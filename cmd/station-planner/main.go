package main

import "github.com/stationforge/station-planner/internal/adapters/cli"

func main() {
	cli.Execute()
}
