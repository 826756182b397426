package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	elicit "github.com/elicit-go/elicit"
	"github.com/elicit-go/elicit/examples/forest"
	"github.com/elicit-go/elicit/inspect"
	"github.com/elicit-go/elicit/scripted"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "describe":
		describeCmd(os.Args[2:])
	case "run":
		runCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "elicit CLI\n\nUsage:\n  elicit describe [-format json|yaml]\n  elicit run -answers fixture.{json,yaml}\n\nNotes:\n  - Both commands operate on the built-in character-creation demo survey.\n  - Fixtures map dotted paths to answers; see the scripted package for the format.")
}

// describeCmd renders the demo survey's question tree for document tooling.
func describeCmd(args []string) {
	fs := flag.NewFlagSet("describe", flag.ExitOnError)
	var format string
	fs.StringVar(&format, "format", "json", "output format: json or yaml")
	_ = fs.Parse(args)

	doc := inspect.Describe(forest.Schema{}.Survey())
	var out []byte
	var err error
	switch format {
	case "json":
		out, err = doc.JSON()
	case "yaml":
		out, err = doc.YAML()
	default:
		fs.Usage()
		os.Exit(2)
	}
	if err != nil {
		fatalf("render: %v", err)
	}
	fmt.Println(string(out))
}

// runCmd replays a fixture through the demo survey and prints the collected
// character.
func runCmd(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	var answersPath string
	fs.StringVar(&answersPath, "answers", "", "path to a JSON or YAML answer fixture")
	_ = fs.Parse(args)
	if answersPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(answersPath)
	if err != nil {
		fatalf("reading answers: %v", err)
	}
	backend, err := loadFixture(answersPath, data)
	if err != nil {
		fatalf("%v", err)
	}

	c, err := elicit.NewBuilder[forest.Character](forest.Schema{}).Run(backend)
	if err != nil {
		fatalf("run: %v", err)
	}
	fmt.Printf("%+v\n", c)
}

func loadFixture(path string, data []byte) (*scripted.Backend, error) {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return scripted.FromYAML(data)
	}
	return scripted.FromJSON(data)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
