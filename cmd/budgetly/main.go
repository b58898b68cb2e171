package main

import "github.com/dafibh/budgetly/internal/cli"

func main() {
	cli.Execute()
}
