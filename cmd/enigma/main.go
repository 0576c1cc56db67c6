// Command enigma enciphers standard input line by line.
//
//	echo "FEIND LIEGT" | enigma -preset manual-1930
//	enigma -rotors II,I,III -ring1 24 -ring2 13 -ring3 22 -r2 2 -r3 12 -reflector A -p "AM FI NV"
//	enigma -config key.yaml -group 0 -v
//
// Settings resolve from the built-in default, then -preset or -config, then
// ENIGMA_* environment variables, then explicit flags. Every line is
// enciphered from the initial settings.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/706f6c6c7578/enigma/config"
	"github.com/706f6c6c7578/enigma/format"
	"github.com/706f6c6c7578/enigma/machine"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	rotors    string
	reflector string
	chassis   int
	positions [4]int
	rings     [4]int
	plugboard string
	config    string
	preset    string
	group     int
	list      bool
	verbose   bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("enigma", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.rotors, "rotors", "I,II,III", "Rotor selection, leftmost first (e.g., I,II,III or Beta,I,II,III)")
	fs.StringVar(&opts.reflector, "reflector", "B", "Reflector type (A, B, C, Bruno or Caesar)")
	fs.IntVar(&opts.chassis, "chassis", 3, "Rotor slots (3 or 4), a four rotor chassis without a fourth rotor gets a straight-through filler")
	for i := range opts.positions {
		fs.IntVar(&opts.positions[i], fmt.Sprintf("r%d", i+1), 1, fmt.Sprintf("Position of rotor %d from the left (1-26)", i+1))
		fs.IntVar(&opts.rings[i], fmt.Sprintf("ring%d", i+1), 1, fmt.Sprintf("Ring setting of rotor %d from the left (1-26)", i+1))
	}
	fs.StringVar(&opts.plugboard, "p", "", "Plugboard connections (e.g., AB CD EF)")
	fs.StringVar(&opts.config, "config", "", "YAML key sheet")
	fs.StringVar(&opts.preset, "preset", "", "Built-in key sheet (see -list)")
	fs.IntVar(&opts.group, "group", 5, "Output group size, 0 disables grouping")
	fs.BoolVar(&opts.list, "list", false, "List built-in key sheets and exit")
	fs.BoolVar(&opts.verbose, "v", false, "Trace every substitution to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if opts.list {
		for _, name := range config.Presets() {
			s, _ := config.Preset(name)
			fmt.Fprintf(stdout, "%-14s %s\n", name, s.Description)
		}
		return 0
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	settings, err := resolve(opts, set)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	m, err := settings.Build(logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	logger.Debug("machine ready", slog.String("settings", m.String()))

	if err := processIO(m, settings.Group, stdin, stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// resolve layers default, preset or file, environment and explicit flags.
func resolve(opts options, set map[string]bool) (config.Settings, error) {
	s := config.Default()
	switch {
	case opts.preset != "" && opts.config != "":
		return config.Settings{}, fmt.Errorf("-preset and -config are mutually exclusive")
	case opts.preset != "":
		p, err := config.Preset(opts.preset)
		if err != nil {
			return config.Settings{}, err
		}
		s = p
	case opts.config != "":
		f, err := config.LoadFile(opts.config)
		if err != nil {
			return config.Settings{}, err
		}
		s = f
	}

	if err := config.ApplyEnv(&s); err != nil {
		return config.Settings{}, err
	}

	if set["rotors"] {
		names := strings.Split(opts.rotors, ",")
		if len(names) != 3 && len(names) != 4 {
			return config.Settings{}, fmt.Errorf("three or four rotors must be specified")
		}
		s.Chassis = len(names)
		s.Rotors = make([]config.Wheel, len(names))
		for i, name := range names {
			s.Rotors[i] = config.Wheel{Name: strings.TrimSpace(name), Ring: 1, Position: "A"}
		}
	}
	if set["chassis"] {
		s.Chassis = opts.chassis
	}
	if set["reflector"] {
		s.Reflector = config.Wheel{Name: opts.reflector}
	}
	for i := range opts.positions {
		pos, ring := fmt.Sprintf("r%d", i+1), fmt.Sprintf("ring%d", i+1)
		if !set[pos] && !set[ring] {
			continue
		}
		if i >= len(s.Rotors) {
			return config.Settings{}, fmt.Errorf("-%s/-%s: only %d rotors selected", pos, ring, len(s.Rotors))
		}
		if set[pos] {
			if opts.positions[i] < 1 || opts.positions[i] > 26 {
				return config.Settings{}, fmt.Errorf("rotor positions must be between 1 and 26")
			}
			s.Rotors[i].Position = string(rune('A' + opts.positions[i] - 1))
		}
		if set[ring] {
			if opts.rings[i] < 1 || opts.rings[i] > 26 {
				return config.Settings{}, fmt.Errorf("ring settings must be between 1 and 26")
			}
			s.Rotors[i].Ring = opts.rings[i]
		}
	}
	if set["p"] {
		s.Plugboard = opts.plugboard
	}
	if set["group"] {
		s.Group = opts.group
	}
	return s, s.Validate()
}

func processIO(m *machine.Machine, group int, reader io.Reader, writer io.Writer) error {
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		output, err := m.Encode(format.Normalize(scanner.Text()))
		if err != nil {
			return err
		}
		if group > 0 {
			if output, err = format.Group(output, group, ' ', '-'); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(writer, output); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
	}
	return scanner.Err()
}
