package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/automoto/actioninput/config"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "bindcheck"
	app.Description = "Validate and generate action binding files"
	app.Usage = "bindcheck <command> [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	app.Before = func(c *cli.Context) error {
		level := slog.LevelInfo
		if c.Bool("debug") {
			level = slog.LevelDebug
		}
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		slog.SetDefault(slog.New(handler))
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:      "check",
			Usage:     "Replay a bindings file and report conflicts",
			ArgsUsage: "<bindings file>",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "verbose",
					Usage: "List every bound button and axis",
				},
			},
			Action: runCheck,
		},
		{
			Name:  "defaults",
			Usage: "Print the default bindings as JSON",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out",
					Usage: "Write to a file instead of stdout",
				},
			},
			Action: runDefaults,
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running bindcheck", "error", err)
		os.Exit(1)
	}
}

func runCheck(c *cli.Context) error {
	if c.NArg() == 0 {
		cli.ShowCommandHelp(c, "check")
		return errors.New("no bindings file provided")
	}
	path := c.Args().Get(0)

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	slog.Debug("Checking bindings", "path", path, "bytes", len(data))
	return checkBindings(data, os.Stdout, c.Bool("verbose"))
}

func runDefaults(c *cli.Context) error {
	var buf bytes.Buffer
	if err := writeDefaults(&buf); err != nil {
		return err
	}

	out := c.String("out")
	if out == "" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write defaults: %w", err)
	}
	slog.Info("Wrote default bindings", "path", out)
	return nil
}

// checkBindings replays data into a fresh map, the same way the game loads
// saved bindings, and prints a summary to w.
func checkBindings(data []byte, w io.Writer, verbose bool) error {
	var m config.ActionMap
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("invalid bindings: %w", err)
	}

	s := m.Serialize()
	chords := 0
	for _, e := range s.KeyActionBindings {
		chords += len(e.Chords)
	}
	sources := 0
	for _, e := range s.AxisActionBindings {
		sources += len(e.Sources)
	}
	fmt.Fprintln(w, st.ok.Render(fmt.Sprintf("ok: %d actions (%d chords), %d axes (%d sources)",
		len(s.KeyActionBindings), chords, len(s.AxisActionBindings), sources)))

	if !verbose {
		return nil
	}
	for _, e := range s.KeyActionBindings {
		for _, chord := range e.Chords {
			fmt.Fprintf(w, "  %s %s %s\n",
				st.scope.Render(fmt.Sprintf("%-8s", e.Scope)),
				st.action.Render(fmt.Sprintf("%-14s", e.Action)),
				st.chord.Render(chord.String()))
		}
	}
	for _, e := range s.AxisActionBindings {
		for _, src := range e.Sources {
			fmt.Fprintf(w, "  %s %s %s\n",
				st.scope.Render(fmt.Sprintf("%-8s", e.Scope)),
				st.action.Render(fmt.Sprintf("%-14s", e.Axis)),
				st.chord.Render(fmt.Sprintf("%s deadzone=%.2f", src.Binding, src.DeadzoneValue())))
		}
	}
	for _, key := range m.BoundKeys() {
		fmt.Fprintln(w, "  "+st.bound.Render("bound "+key.String()))
	}
	for _, axis := range m.BoundAxes() {
		fmt.Fprintln(w, "  "+st.bound.Render("bound axis "+axis.String()))
	}
	return nil
}

func writeDefaults(w io.Writer) error {
	m, err := config.NewDefaultBindings()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
