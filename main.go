// Package main provides the playetl CLI application.
// playetl loads song catalog and activity log files into PostgreSQL.
package main

import "github.com/gnames/playetl/cmd"

func main() {
	cmd.Execute()
}
