package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSource = `# sum of 1..5
ADDI R1, R0, 5
ADDI R2, R0, 0
ADD R2, R2, R1
SUBI R1, R1, 1
BZ R1, 1
BEQ R0, R0, -4
STW R2, R0, 100
HALT
`

const testObject = `04010005
04020000
00221000
0C210001
38200001
3C00FFFC
34020064
44000000
`

// execute runs the root command with args and returns its stdout.
func execute(args ...string) (out string, err error) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)

	err = rootCmd.Execute()
	out = buf.String()
	return
}

func writeFile(t *testing.T, name, text string) (path string) {
	path = filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}
	return
}

func TestOutputName(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		input  string
		from   string
		to     string
		output string
	}){
		{"prog.s", EXT_SOURCE, EXT_OBJECT, "prog.o"},
		{"dir/prog.o", EXT_OBJECT, EXT_SOURCE, "dir/prog.s"},
		{"prog", EXT_SOURCE, EXT_OBJECT, "prog.o"},
		{"prog.txt", EXT_OBJECT, EXT_SOURCE, "prog.txt.s"},
		{STDIO, EXT_SOURCE, EXT_OBJECT, STDIO},
	}

	for _, entry := range table {
		assert.Equal(entry.output, outputName(entry.input, entry.from, entry.to), entry.input)
	}
}

func TestLoadConfig(t *testing.T) {
	assert := assert.New(t)

	path := writeFile(t, "mipslite.yaml", `keep_going: true
workers: 4
max_ticks: 500
log_level: warn
defines:
  BASE: "100"
`)

	cfg, err := LoadConfig(path)
	assert.NoError(err)
	assert.Equal(Config{
		KeepGoing: true,
		Workers:   4,
		MaxTicks:  500,
		LogLevel:  "warn",
		Defines:   map[string]string{"BASE": "100"},
	}, cfg)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(err)

	path = writeFile(t, "bad.yaml", "workers: [1, 2\n")
	_, err = LoadConfig(path)
	assert.Error(err)
}

func TestEncodeDecode(t *testing.T) {
	assert := assert.New(t)

	source := writeFile(t, "prog.s", testSource)
	object := filepath.Join(filepath.Dir(source), "out.o")

	_, err := execute("encode", source, "-o", object)
	assert.NoError(err)

	data, err := os.ReadFile(object)
	assert.NoError(err)
	assert.Equal(testObject, string(data))

	out, err := execute("decode", object, "-o", STDIO)
	assert.NoError(err)
	assert.Equal(`ADDI R1, R0, 5
ADDI R2, R0, 0
ADD R2, R2, R1
SUBI R1, R1, 1
BZ R1, 1
BEQ R0, R0, -4
STW R2, R0, 100
HALT
`, out)

	out, err = execute("decode", object, "-o", STDIO, "-j", "4")
	assert.NoError(err)
	assert.Contains(out, "STW R2, R0, 100\n")
}

func TestEncodeError(t *testing.T) {
	assert := assert.New(t)

	source := writeFile(t, "bad.s", "ADD R1, R2, R3\nFOO\n")
	object := filepath.Join(filepath.Dir(source), "bad.o")

	_, err := execute("encode", source, "-o", object)
	assert.Error(err)
	assert.NoFileExists(object)
}

func TestDecodeError(t *testing.T) {
	assert := assert.New(t)

	object := writeFile(t, "bad.o", "00620800\nZZZ\n44000000\n")
	source := filepath.Join(filepath.Dir(object), "bad.s")

	_, err := execute("decode", object, "-o", source, "-j", "1")
	assert.Error(err)
	assert.NoFileExists(source)

	_, err = execute("decode", object, "-o", source, "-j", "4")
	assert.Error(err)
	assert.NoFileExists(source)
}

func TestDecodeKeepGoing(t *testing.T) {
	assert := assert.New(t)

	defer rootCmd.PersistentFlags().Set("keep-going", "false")

	object := writeFile(t, "bad.o", "00620800\nZZZ\n44000000\n")

	serial, err := execute("-k", "decode", object, "-o", STDIO, "-j", "1")
	assert.Error(err)

	parallel, err := execute("-k", "decode", object, "-o", STDIO, "-j", "4")
	assert.Error(err)

	assert.Equal(serial, parallel)
	assert.True(strings.HasPrefix(parallel, "ADD R1, R2, R3\n# "))
	assert.True(strings.HasSuffix(parallel, "\nHALT\n"))
}

func TestAuto(t *testing.T) {
	assert := assert.New(t)

	source := writeFile(t, "auto.s", testSource)
	_, err := execute("auto", source)
	assert.NoError(err)

	object := filepath.Join(filepath.Dir(source), "auto.o")
	data, err := os.ReadFile(object)
	assert.NoError(err)
	assert.Equal(testObject, string(data))

	_, err = execute("auto", writeFile(t, "prog.txt", testSource))
	assert.ErrorIs(err, ErrExtension)
}

func TestRun(t *testing.T) {
	assert := assert.New(t)

	for _, path := range []string{
		writeFile(t, "run.s", testSource),
		writeFile(t, "run.o", testObject),
	} {
		out, err := execute("run", path)
		assert.NoError(err, path)
		assert.Contains(out, "arithmetic", path)
		assert.Contains(out, "R2", path)
		assert.Contains(out, "15", path)
	}
}

func TestConfigFlag(t *testing.T) {
	assert := assert.New(t)

	config := writeFile(t, "mipslite.yaml", "defines:\n  BASE: \"100\"\n")
	source := writeFile(t, "equ.s", "ADDI R1, R0, BASE\n")
	defer rootCmd.PersistentFlags().Set("config", "")

	out, err := execute("--config", config, "encode", source, "-o", STDIO)
	assert.NoError(err)
	assert.Equal("04010064\n", out)
}

func TestInspect(t *testing.T) {
	assert := assert.New(t)

	out, err := execute("inspect", "04A4FFF6")
	assert.NoError(err)
	assert.Contains(out, "04A4FFF6: ADDI R4, R5, -10 (I, arithmetic)")
	assert.Contains(out, "Imm: (int16) -10")

	_, err = execute("inspect", "XYZ")
	assert.Error(err)
}

func TestOpcodesSchema(t *testing.T) {
	assert := assert.New(t)

	out, err := execute("opcodes")
	assert.NoError(err)
	assert.Contains(out, "HALT")
	assert.Contains(out, "0x11")
	assert.Contains(out, "rd, rt, rs")

	out, err = execute("schema")
	assert.NoError(err)
	assert.Contains(out, "keep_going")
	assert.Contains(out, "max_ticks")
}
