/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/ssargent/mimirdb/cmd/mimir/cmd"

func main() {
	cmd.Execute()
}
