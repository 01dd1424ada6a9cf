// Package main provides the islab CLI.
package main

import "github.com/ArturMukhamedjanov/is-lab1-front/internal/cli"

func main() {
	cli.Execute()
}
