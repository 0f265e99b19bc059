package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"mdflow/common"
	"mdflow/config"
	"mdflow/convert"
	"mdflow/state"
	"mdflow/tree"
)

func layoutCommand() *cli.Command {
	return &cli.Command{
		Name:         "layout",
		Usage:        "Lays out HTML document(s) and dumps resulting elements",
		OnUsageError: passUsageError,
		Action:       convert.Run,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "to", Value: common.OutputFmtText.String(),
				Usage: "dump `TYPE` (supported types: " + strings.Join(common.OutputFmtNames(), ", ") + ")"},
			&cli.IntFlag{Name: "parallel", Aliases: []string{"p"},
				Usage: "interpret top level blocks using `N` workers, 0 takes value from configuration"},
			&cli.BoolFlag{Name: "nodirs", Aliases: []string{"nd"}, Usage: "do not keep input directory structure in destination"},
			&cli.BoolFlag{Name: "transliterate", Aliases: []string{"tr"}, Usage: "transliterate output file names"},
			&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "overwrite existing dumps"},
			&cli.StringFlag{Name: "force-cp",
				Usage: "decode documents without BOM and non UTF-8 names in archives using `ENCODING` (IANA character set name)"},
		},
		ArgsUsage: "SOURCE [DESTINATION]",
		CustomHelpTemplate: cli.CommandHelpTemplate + `
SOURCE:
    file.html                  single document
    directory                  all documents and zip archives under directory, recursively
    archive.zip[/path/inside]  all documents in archive under optional path

    Documents are files with .html, .htm or .xhtml extension. Archives nested
    in archives are not looked into.

DESTINATION:
    directory for dumps, current working directory if absent
`,
	}
}

func dumpTreeCommand() *cli.Command {
	return &cli.Command{
		Name:         "dumptree",
		Usage:        "Prints markup tree built out of HTML document",
		OnUsageError: passUsageError,
		Action:       outputTree,
		ArgsUsage:    "SOURCE",
	}
}

func dumpConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "dumpconfig",
		Usage: "Dumps either default or actual configuration (YAML)",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
		},
		OnUsageError: passUsageError,
		Action:       outputConfiguration,
		ArgsUsage:    "[DESTINATION]",
		CustomHelpTemplate: cli.CommandHelpTemplate + `
DESTINATION:
    file to write configuration to, STDOUT if absent

Actual configuration is the embedded defaults merged with configuration file
given by --config.
`,
	}
}

func outputTree(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input document has been specified")
	}
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("unable to open document: %w", err)
	}
	defer f.Close()

	t := tree.Parse(f, env.Log.Named("tree"))
	if _, err := os.Stdout.WriteString(t.String()); err != nil {
		return fmt.Errorf("unable to write tree: %w", err)
	}
	if issues := t.Issues(); len(issues) > 0 {
		env.Log.Warn("Document markup is malformed", zap.Int("issues", len(issues)), zap.Error(t.Err()))
	}
	return nil
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	var (
		data []byte
		kind string
		err  error
	)
	if cmd.Bool("default") {
		kind = "default"
		data, err = config.Prepare()
	} else {
		kind = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	fname := cmd.Args().Get(0)
	env.Log.Info("Outputting configuration", zap.String("state", kind), zap.String("file", cmp.Or(fname, "STDOUT")))
	if len(fname) == 0 {
		_, err = os.Stdout.Write(data)
	} else {
		err = os.WriteFile(fname, data, 0644)
	}
	if err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
