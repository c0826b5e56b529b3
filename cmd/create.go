/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/playetl/internal/iodb"
	"github.com/gnames/playetl/internal/ioschema"
	"github.com/gnames/playetl/pkg/schema"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
func getCreateCmd() *cobra.Command {
	var forceCreate, dryRun bool

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create database schema",
		Long: `Create the star schema from scratch.

Creates songs, artists, users, time and songplays tables. If the
database already has tables, they are dropped after confirmation.

Use --force to skip confirmation and drop existing tables.
Use --dry-run to print the SQL of the schema without touching
the database.

Examples:
  playetl create
  playetl create --force
  playetl create -n`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dryRun {
				printDDL(cmd.OutOrStdout())
				return nil
			}
			return runCreate(cmd, args, forceCreate)
		},
	}

	createCmd.Flags().BoolVarP(&forceCreate, "force", "f",
		false, "drop existing tables without confirmation")
	createCmd.Flags().BoolVarP(&dryRun, "dry-run", "n",
		false, "print schema SQL and exit")

	return createCmd
}

func printDDL(w io.Writer) {
	for _, stmt := range schema.DDL() {
		stmt = strings.TrimSuffix(strings.TrimSpace(stmt), ";")
		fmt.Fprintf(w, "%s;\n\n", stmt)
	}
}

func runCreate(
	cmd *cobra.Command,
	_ []string,
	force bool,
) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	hasTables, err := op.HasTables(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if hasTables && !force {
		gn.Warn("Database <em>%s</em> is not empty.", cfg.Database.Database)
		gn.Warn("All its tables, loaded plays included, will be dropped.")
		fmt.Fprint(cmd.OutOrStdout(), "\nDo you want to continue? (yes/no): ")

		ok, err := confirm(cmd.InOrStdin())
		if err != nil {
			gn.Warn("Failed to read user input")
			return err
		}
		if !ok {
			gn.Info("Aborted. No changes made.")
			return nil
		}
	}

	if hasTables {
		if err = op.DropAllTables(ctx); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		gn.Info("Existing tables dropped.")
	}

	if err = ioschema.NewManager(op).Create(ctx, cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Created tables: <em>%s</em>",
		strings.Join(schema.TableNames(), ", "))
	gn.Info("Run <em>playetl load</em> to import song and log files.")
	return nil
}

// confirm reads a yes/no answer. Only "yes" and "y" agree.
func confirm(r io.Reader) (bool, error) {
	response, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && (err != io.EOF || response == "") {
		return false, err
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "yes" || response == "y", nil
}
