package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	box "github.com/Delta456/box-cli-maker/v2"

	"github.com/jessevdk/go-flags"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/patmatch/patmatch/pkg/glob"
	"github.com/patmatch/patmatch/pkg/handler"
	"github.com/patmatch/patmatch/pkg/rules"
)

const version = "0.1.0"

// Exit codes: matched, not matched, usage or internal error.
const (
	exitMatch   = 0
	exitNoMatch = 1
	exitUsage   = 2
)

type options struct {
	Version bool    `short:"v" long:"version" description:"Display the current version of patmatch"`
	Debug   *bool   `short:"d" long:"debug" description:"Shows debugging information"`
	Config  *string `short:"c" long:"config" description:"Match against the rules in a JSON rule file instead of a single pattern"`
	Listen  *string `short:"l" long:"listen" description:"Run as an HTTP matching service on this port"`
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: patmatch [options] path pattern")
}

func main() {
	var opts options

	args, err := flags.Parse(&opts)
	if err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(exitUsage)
	}

	if opts.Version {
		fmt.Printf("%s\n", version)
		os.Exit(0)
	}

	debug := opts.Debug != nil && *opts.Debug

	var ruleSet *rules.RuleSet
	if opts.Config != nil {
		ruleSet, err = rules.Load(*opts.Config)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(exitUsage)
		}
	}

	if opts.Listen != nil {
		serve(*opts.Listen, debug, ruleSet)
		return
	}

	os.Exit(run(args, debug, ruleSet))
}

func run(args []string, debug bool, ruleSet *rules.RuleSet) int {
	if ruleSet != nil {
		if len(args) != 1 {
			usage()
			return exitUsage
		}

		hit, err := ruleSet.Match(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return exitUsage
		}
		if hit {
			return exitMatch
		}
		return exitNoMatch
	}

	if len(args) != 2 {
		usage()
		return exitUsage
	}

	hit, err := glob.MatchString(args[0], args[1], glob.Options{Debug: debug})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	if hit {
		return exitMatch
	}
	return exitNoMatch
}

func serve(port string, debug bool, ruleSet *rules.RuleSet) {
	h := handler.NewHandler(handler.Configuration{
		Debug: debug,
		Rules: ruleSet,
	})

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Compress(5))

	h.AttachRoutes(router)

	lines := []string{
		fmt.Sprintf("- Local:       http://%s:%s/match", "localhost", port),
	}
	if ruleSet != nil {
		lines = append(lines, fmt.Sprintf("- Rules:       %d loaded", ruleSet.Len()))
	}

	bx := box.New(box.Config{Px: 4, Py: 1})
	bx.Println("Matching!", strings.Join(lines, "\n"))

	server := http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: router,
	}

	log.Fatal(server.ListenAndServe())
}
