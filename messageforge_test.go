package messageforge_test

import (
	"bytes"
	"errors"
	"go/build"
	"io/fs"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis/analysistest"

	forgeinternal "github.com/kinghuynh/messageforge/internal/forge"
	"github.com/kinghuynh/messageforge/pkg/forgeanalysis"
)

const forgeModule = "github.com/kinghuynh/messageforge"

// testdataDirs lists the case directories under testdata/<kind>.
func testdataDirs(t *testing.T, kind string) []string {
	t.Helper()
	ents, err := os.ReadDir(filepath.Join("testdata", kind))
	require.NoError(t, err)

	var names []string
	for _, ent := range ents {
		if ent.IsDir() && !strings.HasPrefix(ent.Name(), ".") && !strings.HasPrefix(ent.Name(), "_") {
			names = append(names, ent.Name())
		}
	}
	return names
}

// TestAnalysis runs the analyzer over each package in testdata/analysis.
// Diagnostics are matched against "// want `REGEXP`" comments in the sources.
func TestAnalysis(t *testing.T) {
	t.Setenv("GOFLAGS", "-tags=messageforge")

	for _, name := range testdataDirs(t, "analysis") {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			analysistest.Run(t, "", forgeanalysis.Analyzer, "./testdata/analysis/"+name)
		})
	}
}

// TestPrograms generates code for each program in testdata/program and runs
// it. A case directory holds the packages of module example.com/<case>, and
// a want directory with either of:
//
//	program_output.txt     --- output of "go run ./main"
//	messageforge_error.txt --- error of the generator
//
// The main package is named by main_pkg.txt, or "main" by default.
func TestPrograms(t *testing.T) {
	forgeGo, err := os.ReadFile("messageforge.go")
	require.NoError(t, err)

	for _, name := range testdataDirs(t, "program") {
		pc := loadProgramCase(t, name)
		pc.sources[forgeModule+"/messageforge.go"] = forgeGo
		t.Run(name, pc.run)
	}
}

type programCase struct {
	name    string
	mainPkg string
	sources map[string][]byte // by import path of the file

	wantOutput string
	wantError  string
}

func (pc *programCase) module() string { return "example.com/" + pc.name }

func loadProgramCase(t *testing.T, name string) *programCase {
	t.Helper()
	dir := filepath.Join("testdata", "program", name)
	pc := &programCase{name: name, mainPkg: "main", sources: make(map[string][]byte)}

	readTrimmed := func(elem ...string) string {
		data, err := os.ReadFile(filepath.Join(append([]string{dir}, elem...)...))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			require.NoError(t, err)
		}
		return string(bytes.TrimSpace(data))
	}
	if mainPkg := readTrimmed("main_pkg.txt"); mainPkg != "" {
		pc.mainPkg = mainPkg
	}
	pc.wantOutput = readTrimmed("want", "program_output.txt")
	pc.wantError = readTrimmed("want", "messageforge_error.txt")
	require.False(t, pc.wantOutput == "" && pc.wantError == "", "%s wants nothing", name)

	err := filepath.WalkDir(dir, func(p string, ent fs.DirEntry, err error) error {
		// Leftover generated files of a debugging session are skipped.
		if err != nil || !ent.Type().IsRegular() || filepath.Ext(p) != ".go" || ent.Name() == "messageforge_gen.go" {
			return err
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		src, err := os.ReadFile(p)
		pc.sources[path.Join(pc.module(), filepath.ToSlash(rel))] = src
		return err
	})
	require.NoError(t, err)
	return pc
}

// materialize lays the case out as a GOPATH with two modules, the case module
// and the directive package it replaces with a local copy.
func (pc *programCase) materialize(t *testing.T, gopath string) (wd string) {
	t.Helper()
	src := filepath.Join(gopath, "src")

	write := func(name string, data []byte) {
		dst := filepath.Join(src, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0o777))
		require.NoError(t, os.WriteFile(dst, data, 0o666))
	}
	for name, data := range pc.sources {
		write(name, data)
	}

	forgeDir := filepath.Join(src, filepath.FromSlash(forgeModule))
	write(forgeModule+"/go.mod", []byte("module "+forgeModule+"\n\ngo 1.25.0\n"))
	write(pc.module()+"/go.mod", []byte(strings.Join([]string{
		"module " + pc.module(),
		"go 1.25.0",
		"require " + forgeModule + " v0.0.0",
		"replace " + forgeModule + " => " + forgeDir,
		"",
	}, "\n\n")))

	return filepath.Join(src, filepath.FromSlash(pc.module()))
}

func (pc *programCase) run(t *testing.T) {
	t.Parallel()

	// Module files land in GOPATH read-only, so t.TempDir cannot clean it up.
	gopath := filepath.Join(os.TempDir(), "messageforge_test_"+pc.name)
	require.NoError(t, os.RemoveAll(gopath))
	wd := pc.materialize(t, gopath)
	env := append(os.Environ(), "GOPATH="+gopath)

	outs, err := forgeinternal.Main(t.Context(), wd, env, "", false, "messageforge_gen.go", []string{"./" + pc.mainPkg})
	if pc.wantError != "" {
		require.Error(t, err, "messageforge should have failed")
		assert.Equal(t, normalizeWhitespace(pc.wantError), normalizeWhitespace(relPathInString(err.Error(), wd)))
		return
	}
	require.NoError(t, err)

	for name, code := range outs {
		require.NoError(t, os.WriteFile(filepath.Join(wd, name), code, 0o666))
	}

	cmd := exec.Command(filepath.Join(build.Default.GOROOT, "bin", "go"), "run", "./"+pc.mainPkg)
	cmd.Dir = wd
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))
	assert.Equal(t, pc.wantOutput, strings.TrimSpace(string(out)))
}

// relPathInString strips the path of wd, relative to the test directory, from
// positions in s.
func relPathInString(s, wd string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return s
	}
	rel, err := filepath.Rel(cwd, wd)
	if err != nil {
		return s
	}
	s = strings.ReplaceAll(s, rel+string(filepath.Separator), "")
	return strings.ReplaceAll(s, rel, "")
}

func normalizeWhitespace(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\t", "    ")
}
