// Package shell runs the interactive rolodex session: a numbered menu read
// from the terminal, one command per line, until the user exits.
//
// Example usage:
//
//	sh := shell.New(book, func() error { return store.Save(path, book) },
//	    shell.WithPageSize(10),
//	)
//	if err := sh.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// Finder answers search and phone-owner queries over the session's book.
type Finder interface {
	Search(query string) ([]*types.Record, error)
	FindByPhone(raw string) (string, error)
}

// errQuit ends the session from inside a sub-menu after the book was saved.
var errQuit = errors.New("quit")

// Shell is an interactive session over one address book.
type Shell struct {
	book     *types.AddressBook
	save     func() error
	finder   Finder
	reader   *bufio.Reader
	writer   io.Writer
	pageSize int
	now      func() time.Time
	styles   styles
}

// Option configures a Shell.
type Option func(*Shell)

// WithReader sets the input source (default is os.Stdin).
func WithReader(r io.Reader) Option {
	return func(s *Shell) {
		s.reader = bufio.NewReader(r)
	}
}

// WithWriter sets the output writer (default is os.Stdout).
func WithWriter(w io.Writer) Option {
	return func(s *Shell) {
		s.writer = w
	}
}

// WithPageSize sets the number of records per page for the paginated
// listing. Values below one are ignored.
func WithPageSize(n int) Option {
	return func(s *Shell) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithFinder replaces the default in-memory search.
func WithFinder(f Finder) Option {
	return func(s *Shell) {
		s.finder = f
	}
}

// WithClock sets the source of today's date for birthday countdowns.
func WithClock(now func() time.Time) Option {
	return func(s *Shell) {
		s.now = now
	}
}

// New creates a shell over book. save persists the book; it is called on
// the save command, on exit, and best-effort when the session fails.
func New(book *types.AddressBook, save func() error, opts ...Option) *Shell {
	s := &Shell{
		book:     book,
		save:     save,
		finder:   bookFinder{book},
		reader:   bufio.NewReader(os.Stdin),
		writer:   os.Stdout,
		pageSize: types.DefaultPageSize,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.styles = newStyles(lipgloss.NewRenderer(s.writer))
	return s
}

// Run prints the menu and processes commands until an exit command or end
// of input, saving the book before returning. If a command fails or panics
// the book is saved best-effort and the failure is returned.
func (s *Shell) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.saveBestEffort()
			err = fmt.Errorf("shell: %v", r)
		}
	}()

	s.printMenu()

	for {
		select {
		case <-ctx.Done():
			s.saveBestEffort()
			return ctx.Err()
		default:
		}

		input, err := s.prompt(">>> ")
		if errors.Is(err, io.EOF) {
			return s.quit()
		}
		if err != nil {
			s.saveBestEffort()
			return fmt.Errorf("read input: %w", err)
		}

		slog.Debug("shell command", "input", input)
		done, err := s.dispatch(input)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			s.saveBestEffort()
			return err
		}
		if done {
			return nil
		}
	}
}

// dispatch runs one top-level command. It reports true once the session
// should end.
func (s *Shell) dispatch(input string) (bool, error) {
	switch input {
	case "hello":
		s.println("Hello! How can I help you?")
	case "1":
		s.listAll()
	case "2":
		s.listPages()
	case "3":
		return false, s.search()
	case "4":
		return false, s.editRecord()
	case "5":
		return false, s.createRecord()
	case "6":
		return false, s.deleteRecord()
	case "7":
		if err := s.save(); err != nil {
			return false, fmt.Errorf("save: %w", err)
		}
		s.println("Address book saved.")
	case "8":
		return false, s.phoneOwner()
	case "good bye", "close", "exit":
		return true, s.quit()
	case "":
	default:
		s.printError("Error command!")
	}
	return false, nil
}

// quit saves the book and says goodbye.
func (s *Shell) quit() error {
	if err := s.save(); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	s.println("Good bye!")
	return nil
}

func (s *Shell) saveBestEffort() {
	if err := s.save(); err != nil {
		slog.Error("best-effort save failed", "error", err)
	}
}

// prompt prints label and reads one line with surrounding space trimmed.
// A final line without a newline is returned before io.EOF.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.writer, label)
	line, err := s.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.writer, a...)
}

func (s *Shell) printf(format string, a ...any) {
	fmt.Fprintf(s.writer, format, a...)
}

func (s *Shell) printError(msg string) {
	fmt.Fprintln(s.writer, s.styles.err.Render(msg))
}

// NewBookFinder returns a Finder that answers queries straight from book.
func NewBookFinder(book *types.AddressBook) Finder {
	return bookFinder{book}
}

type bookFinder struct {
	book *types.AddressBook
}

func (f bookFinder) Search(query string) ([]*types.Record, error) {
	return f.book.Search(query), nil
}

func (f bookFinder) FindByPhone(raw string) (string, error) {
	return f.book.FindByPhone(raw)
}
