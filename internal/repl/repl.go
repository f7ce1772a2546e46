// Package repl implements the interactive prompt loop of tinygenkey.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/tinygenkey/tinygenkey/internal/alphabet"
	"github.com/tinygenkey/tinygenkey/internal/keycheck"
	"github.com/tinygenkey/tinygenkey/internal/keygen"
	"github.com/tinygenkey/tinygenkey/internal/render"
)

// Prompt is printed before every command.
const Prompt = ">>> "

const help = `
Available commands:
    generate    Generate a new key with custom parameters
    verify      Verify an existing key against rules
    quick       Generate with defaults (quick mode)
    presets     List available presets
    help        Show this help
    exit/quit   Exit the REPL
`

// errEndOfInput ends the loop when the input closes in the middle of a command.
var errEndOfInput = errors.New("end of input")

// Session is one REPL run over a line based input.
type Session struct {
	presets   alphabet.Table
	generator *keygen.Generator
	validator *keycheck.Validator

	in  *bufio.Scanner
	out io.Writer
}

// New returns a Session reading commands from in and writing to out.
func New(presets alphabet.Table, g *keygen.Generator, v *keycheck.Validator, in io.Reader, out io.Writer) *Session {
	return &Session{
		presets:   presets,
		generator: g,
		validator: v,
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run reads commands until exit, quit or the end of the input.
func (s *Session) Run() error {
	s.println("Welcome to TinyGenKey!")
	s.println("Input 'generate' to generate a key, and 'verify' to verify. Input 'help' for all commands.")
	s.println("")

	for {
		cmd, err := s.ask(Prompt)
		if err != nil {
			s.println("\nExiting REPL.")
			return s.scanErr()
		}

		switch cmd = strings.TrimSpace(cmd); cmd {
		case "":
			continue
		case "exit", "quit":
			s.println("Goodbye!")
			return nil
		case "help":
			s.println(help)
		case "generate":
			err = s.generate()
		case "verify":
			err = s.verify()
		case "quick":
			err = s.quick()
		case "presets":
			err = render.Presets(s.out, s.presets, render.Text)
			s.println("")
		default:
			s.printf("Unknown command: %s\n", cmd)
		}

		switch {
		case errors.Is(err, errEndOfInput):
			s.println("\nExiting REPL.")
			return s.scanErr()
		case err != nil:
			log.Debug().Err(err).Str("command", cmd).Msg("repl command failed")
			s.printf("Error: %s\n", err)
		}
	}
}

func (s *Session) generate() error {
	answers, err := s.askAll(
		"Enter a preset (blank for alphanumeric): ",
		"Enter the length (blank for 42): ",
		"Enter a prefix (if any): ",
		"Enter a suffix (if any): ",
	)
	if err != nil {
		return err
	}

	req := keygen.Request{Length: keygen.DefaultLength, Prefix: answers[2], Suffix: answers[3]}

	if answers[0] != "" {
		req.Source = alphabet.Preset(answers[0])
	}

	if answers[1] != "" {
		if req.Length, err = parseInt("length", answers[1]); err != nil {
			return err
		}
	}

	key, err := s.generator.Generate(req)
	if err != nil {
		return err //nolint:wrapcheck
	}

	s.printf("\nHere's your key: %s\n\n", key)

	return nil
}

func (s *Session) verify() error {
	answers, err := s.askAll(
		"Enter key to verify: ",
		"Enter a preset or leave blank: ",
		"Enter a minimum length (if any): ",
		"Enter a maximum length (if any): ",
		"Enter a prefix (if any): ",
		"Enter a suffix (if any): ",
	)
	if err != nil {
		return err
	}

	c := keycheck.Constraints{Prefix: answers[4], Suffix: answers[5]}

	if answers[1] != "" {
		c.Source = alphabet.Preset(answers[1])
	}

	if c.MinLength, err = optionalInt("minimum length", answers[2]); err != nil {
		return err
	}

	if c.MaxLength, err = optionalInt("maximum length", answers[3]); err != nil {
		return err
	}

	report, err := s.validator.Validate(answers[0], c)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if err = render.Reports(s.out, []string{answers[0]}, []keycheck.Report{report}, render.Text); err != nil {
		return err //nolint:wrapcheck
	}

	s.println("")

	return nil
}

func (s *Session) quick() error {
	key, err := s.generator.Generate(keygen.Request{Length: keygen.DefaultLength})
	if err != nil {
		return err //nolint:wrapcheck
	}

	s.printf("Here's your quick key: %s\n\n", key)

	return nil
}

// ask prints prompt and returns the next input line.
func (s *Session) ask(prompt string) (string, error) {
	s.printf("%s", prompt)

	if !s.in.Scan() {
		return "", errEndOfInput
	}

	return s.in.Text(), nil
}

func (s *Session) askAll(prompts ...string) ([]string, error) {
	answers := make([]string, 0, len(prompts))

	for _, p := range prompts {
		a, err := s.ask(p)
		if err != nil {
			return nil, err
		}

		answers = append(answers, a)
	}

	return answers, nil
}

func (s *Session) scanErr() error {
	return errors.Wrap(s.in.Err(), "failed to read repl input")
}

func (s *Session) println(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func parseInt(name, value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s %q", name, value)
	}

	return v, nil
}

func optionalInt(name, value string) (*int, error) {
	if value == "" {
		return nil, nil //nolint:nilnil
	}

	v, err := parseInt(name, value)
	if err != nil {
		return nil, err
	}

	return &v, nil
}
