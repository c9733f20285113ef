package main

import "github.com/davimtg/NutriPlanner-sub000/cmd/nutriplan"

func main() {
	nutriplan.Execute()
}
