package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/rolodex/internal/store"
	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// testEnv is a config dir and data dir pair under t.TempDir.
type testEnv struct {
	configDir string
	dataDir   string
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	for _, key := range []string{"LOG_LEVEL", "ROLODEX_INDEX", "ROLODEX_PAGE_SIZE", "ROLODEX_BOOK_FILE", "ROLODEX_LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	dir := t.TempDir()
	return testEnv{
		configDir: filepath.Join(dir, "config"),
		dataDir:   filepath.Join(dir, "data"),
	}
}

func (e testEnv) bookPath() string {
	return filepath.Join(e.dataDir, types.DefaultBookFile)
}

// run executes rolodex with args and stdin, returning stdout.
func (e testEnv) run(stdin string, args ...string) (string, error) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--config-dir", e.configDir, "--data-dir", e.dataDir}, args...))
	err := root.Execute()
	return out.String(), err
}

func (e testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run("", args...)
	require.NoError(t, err, "rolodex %s", strings.Join(args, " "))
	return out
}

func (e testEnv) seed(t *testing.T) {
	t.Helper()
	e.mustRun(t, "add", "John", "--phone", "1234567890", "--phone", "5555555555", "--birthday", "1990-05-15")
	e.mustRun(t, "add", "Helen", "--phone", "0987654321")
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "rolodex", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCmd()
	commands := [][]string{
		{"shell"}, {"list"}, {"pages"}, {"search"}, {"show"}, {"find-phone"},
		{"add"}, {"phone", "add"}, {"phone", "edit"}, {"phone", "remove"},
		{"birthday", "set"}, {"birthday", "days"}, {"delete"},
		{"export"}, {"import"}, {"init"}, {"version"},
	}
	for _, path := range commands {
		t.Run(strings.Join(path, " "), func(t *testing.T) {
			sub, _, err := cmd.Find(path)
			require.NoError(t, err)
			assert.Equal(t, path[len(path)-1], sub.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"config-dir", "data-dir", "index", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", cmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: exitSuccess},
		{name: "validation", err: types.ErrInvalidPhone, want: exitUserError},
		{name: "system", err: sysError("save book", errors.New("disk full")), want: exitSysError},
		{name: "wrapped system", err: fmt.Errorf("outer: %w", sysError("x", io.ErrUnexpectedEOF)), want: exitSysError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	out := env.mustRun(t, "version")
	assert.Equal(t, "rolodex dev\nmodule: github.com/mesh-intelligence/rolodex\n", out)
}

func TestAddAndList(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	out := env.mustRun(t, "list")
	assert.Equal(t,
		"John - 1234567890, 5555555555, birthday - 1990-05-15\n"+
			"Helen - 0987654321, birthday - not set\n",
		out)

	book, err := store.Load(env.bookPath())
	require.NoError(t, err)
	assert.Equal(t, []string{"John", "Helen"}, book.Names())
}

func TestAddRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "bad phone", args: []string{"add", "Anna", "--phone", "12345"}, wantErr: types.ErrInvalidPhone},
		{name: "bad birthday", args: []string{"add", "Anna", "--birthday", "1990-02-30"}, wantErr: types.ErrInvalidDate},
		{name: "empty name", args: []string{"add", ""}, wantErr: types.ErrInvalidName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			_, err := env.run("", tt.args...)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, exitUserError, ExitCode(err))
			assert.NoFileExists(t, env.bookPath())
		})
	}
}

func TestAddExistingName(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	_, err := env.run("", "add", "John", "--phone", "1111111111")
	require.ErrorIs(t, err, errRecordExists)

	env.mustRun(t, "add", "John", "--phone", "1111111111", "--replace")
	out := env.mustRun(t, "show", "John")
	assert.Equal(t, "Name: John\nPhones: 1111111111\nBirthday: not set\n", out)

	list := env.mustRun(t, "list")
	assert.True(t, strings.HasPrefix(list, "John - "), "replaced record keeps its position")
}

func TestShowMissing(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run("", "show", "Nobody")
	require.ErrorIs(t, err, types.ErrRecordNotFound)
	assert.Equal(t, exitUserError, ExitCode(err))
}

func TestPhoneCommands(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	assert.Equal(t, "Phone added for Helen\n", env.mustRun(t, "phone", "add", "Helen", "2222222222"))
	assert.Equal(t, "Phone number updated for John\n", env.mustRun(t, "phone", "edit", "John", "1234567890", "1111111111"))
	assert.Equal(t, "Phone 5555555555 has been deleted\n", env.mustRun(t, "phone", "remove", "John", "5555555555"))

	_, err := env.run("", "phone", "edit", "John", "0000000000", "3333333333")
	assert.ErrorIs(t, err, types.ErrPhoneNotFound)
	_, err = env.run("", "phone", "edit", "John", "1111111111", "abc")
	assert.ErrorIs(t, err, types.ErrInvalidPhone)
	_, err = env.run("", "phone", "add", "Nobody", "2222222222")
	assert.ErrorIs(t, err, types.ErrRecordNotFound)

	assert.Equal(t,
		"John - 1111111111, birthday - 1990-05-15\n"+
			"Helen - 0987654321, 2222222222, birthday - not set\n",
		env.mustRun(t, "list"))
}

func TestBirthdayCommands(t *testing.T) {
	orig := now
	now = func() time.Time { return time.Date(2024, time.May, 10, 12, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = orig })

	env := newTestEnv(t)
	env.seed(t)

	assert.Equal(t, "5 days before the birthday\n", env.mustRun(t, "birthday", "days", "John"))

	_, err := env.run("", "birthday", "days", "Helen")
	assert.ErrorIs(t, err, types.ErrNoBirthday)

	env.mustRun(t, "birthday", "set", "Helen", "1985-05-09")
	assert.Equal(t, "364 days before the birthday\n", env.mustRun(t, "birthday", "days", "Helen"))

	_, err = env.run("", "birthday", "set", "Helen", "not-a-date")
	assert.ErrorIs(t, err, types.ErrInvalidDate)
}

func TestSearch(t *testing.T) {
	for _, index := range []string{types.IndexMemory, types.IndexSQLite} {
		t.Run(index, func(t *testing.T) {
			env := newTestEnv(t)
			env.seed(t)

			out := env.mustRun(t, "--index", index, "search", "5")
			assert.Equal(t,
				"Found users:\n"+
					"Name: John\nPhones: 1234567890, 5555555555\nBirthday: 1990-05-15\n"+
					"Name: John\nPhones: 1234567890, 5555555555\nBirthday: 1990-05-15\n"+
					"Name: Helen\nPhones: 0987654321\nBirthday: not set\n",
				out)

			out = env.mustRun(t, "--index", index, "search", "zzz")
			assert.Equal(t, "This data is not found.\n", out)
		})
	}
}

func TestFindPhone(t *testing.T) {
	for _, index := range []string{types.IndexMemory, types.IndexSQLite} {
		t.Run(index, func(t *testing.T) {
			env := newTestEnv(t)
			env.seed(t)

			assert.Equal(t, "5555555555 belongs to John\n", env.mustRun(t, "--index", index, "find-phone", "5555555555"))

			_, err := env.run("", "--index", index, "find-phone", "555")
			require.ErrorIs(t, err, types.ErrPhoneNotFound)
			assert.Equal(t, exitUserError, ExitCode(err))
		})
	}
}

func TestPages(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)
	env.mustRun(t, "add", "Anna")

	out := env.mustRun(t, "pages", "--size", "2")
	assert.Equal(t,
		"Page 1\n"+
			"John - 1234567890, 5555555555, birthday - 1990-05-15\n"+
			"Helen - 0987654321, birthday - not set\n"+
			"Page 2\n"+
			"Anna - no phone, birthday - not set\n",
		out)

	_, err := env.run("", "pages", "--size", "0")
	assert.ErrorIs(t, err, types.ErrInvalidPageSize)
}

func TestPagesUsesConfiguredSize(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)
	t.Setenv("ROLODEX_PAGE_SIZE", "1")

	out := env.mustRun(t, "pages")
	assert.Contains(t, out, "Page 2\nHelen - ")
}

func TestDelete(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)

	assert.Equal(t, "Helen has been deleted from the AddressBook\n", env.mustRun(t, "delete", "Helen"))

	_, err := env.run("", "delete", "Helen")
	require.ErrorIs(t, err, types.ErrRecordNotFound)
	assert.Contains(t, err.Error(), "Helen is not in the AddressBook")
}

func TestExportImport(t *testing.T) {
	src := newTestEnv(t)
	src.seed(t)
	file := filepath.Join(t.TempDir(), "contacts.jsonl")

	assert.Equal(t, fmt.Sprintf("Exported 2 records to %s\n", file), src.mustRun(t, "export", file))

	dst := newTestEnv(t)
	assert.Equal(t, fmt.Sprintf("Imported 2 records from %s\n", file), dst.mustRun(t, "import", file))
	assert.Equal(t, src.mustRun(t, "list"), dst.mustRun(t, "list"))
}

func TestImportBadFileLeavesBookUnchanged(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t)
	before, err := os.ReadFile(env.bookPath())
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "bad.jsonl")
	content := `{"name":"Anna","phones":["3333333333"],"birthday":"not set"}` + "\n" +
		`{"name":"Bob","phones":["12"],"birthday":"not set"}` + "\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	_, err = env.run("", "import", file)
	require.ErrorIs(t, err, types.ErrInvalidPhone)

	after, err := os.ReadFile(env.bookPath())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestInit(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "init")
	assert.Contains(t, out, fmt.Sprintf("book: %s (created)", env.bookPath()))
	assert.FileExists(t, filepath.Join(env.configDir, "config.yaml"))

	data, err := os.ReadFile(env.bookPath())
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))

	env.mustRun(t, "add", "Anna")
	out = env.mustRun(t, "init")
	assert.Contains(t, out, "(exists)")
	assert.Equal(t, "Anna - no phone, birthday - not set\n", env.mustRun(t, "list"))
}

func TestCorruptBookIsSystemError(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, os.MkdirAll(env.dataDir, 0o755))
	require.NoError(t, os.WriteFile(env.bookPath(), []byte(`{"John": {"name": "John"}}`), 0o644))

	_, err := env.run("", "list")
	require.Error(t, err)
	assert.Equal(t, exitSysError, ExitCode(err))

	var le *store.LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "John", le.Key)
}

func TestUnknownIndexIsSystemError(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.run("", "--index", "bogus", "list")
	require.ErrorIs(t, err, types.ErrIndexUnknown)
	assert.Equal(t, exitSysError, ExitCode(err))
}

func TestShellFromRoot(t *testing.T) {
	for _, args := range [][]string{nil, {"shell"}} {
		t.Run(strings.Join(append([]string{"rolodex"}, args...), " "), func(t *testing.T) {
			env := newTestEnv(t)
			env.seed(t)

			out, err := env.run("5\nAnna\nadd phone\n3333333333\nback\ny\nexit\n", args...)
			require.NoError(t, err)
			assert.Contains(t, out, "Record saved for Anna")
			assert.Contains(t, out, "Good bye!")

			book, err := store.Load(env.bookPath())
			require.NoError(t, err)
			assert.Equal(t, []string{"John", "Helen", "Anna"}, book.Names())
		})
	}
}
