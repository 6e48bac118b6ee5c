// Package cmd implements the hexagonview CLI commands.
//
// A root command dispatches to registered subcommands (render, geometry).
// Each subcommand parses its own flags with a pflag.FlagSet.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/pflag"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	// Flags builds the command's flag set. Nil means the command takes none.
	Flags func() *pflag.FlagSet
	Run   func(flags *pflag.FlagSet, args []string, out io.Writer) error
}

var rootCmd = &Command{
	Name:  "hexagonview",
	Short: "Mask images into a bordered hexagon",
	Long: `hexagonview clips an image to a hexagon with vertices at the top and
bottom and vertical left and right sides. The hexagon is sized by the output
height and a rounded border is stroked along the outline.

Use "hexagonview <command> --help" for more information about a command.`,
	Usage: "hexagonview <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
}

// Execute runs the CLI with the given arguments, writing results to out.
func Execute(args []string, out io.Writer) error {
	if len(args) == 0 {
		printHelp(out)
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp(out)
		return nil
	case "-v", "--version", "version":
		fmt.Fprintf(out, "hexagonview version %s (built %s)\n", Version, BuildTime)
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		printHelp(out)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	flags := pflag.NewFlagSet(cmd.Name, pflag.ContinueOnError)
	if cmd.Flags != nil {
		flags = cmd.Flags()
	}
	flags.SetOutput(io.Discard)
	if err := flags.Parse(args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printCommandHelp(out, cmd, flags)
			return nil
		}
		return fmt.Errorf("%s: %w\n\nUsage: %s", cmd.Name, err, cmd.Usage)
	}
	return cmd.Run(flags, flags.Args(), out)
}

func sortedCommands() []*Command {
	cmds := make([]*Command, 0, len(commands))
	for _, c := range commands {
		cmds = append(cmds, c)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })
	return cmds
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, rootCmd.Long)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	for _, sub := range sortedCommands() {
		fmt.Fprintf(out, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	fmt.Fprintln(out, "  -h, --help           Show help for a command")
	fmt.Fprintln(out, "  -v, --version        Show version information")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples:")
	fmt.Fprintln(out, "  hexagonview render avatar.jpg avatar.png")
	fmt.Fprintln(out, "  hexagonview render --size 256 --border 12 in.webp out.png")
	fmt.Fprintln(out, "  hexagonview geometry --size 100")
}

func printCommandHelp(out io.Writer, cmd *Command, flags *pflag.FlagSet) {
	fmt.Fprintln(out, cmd.Long)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s\n", cmd.Usage)
	if usage := flags.FlagUsages(); usage != "" {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Flags:")
		fmt.Fprint(out, usage)
	}
}
