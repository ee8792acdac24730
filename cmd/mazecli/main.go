// Command mazecli generates a maze offline, prints it with its shortest path,
// and mints operator tokens for the protected HTTP routes.
//
//	mazecli [-rows 30] [-cols 30] [-p 0.4] [-q 0.3] [-seed 0] [-entry -1] [-json]
//	mazecli token -secret s -issuer i [-subject operator] [-ttl 1h]
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/game/maze"
	logger "github.com/beka-birhanu/vinom-pathfinder/infrastruture/log"
	"github.com/beka-birhanu/vinom-pathfinder/infrastruture/token"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
)

func main() {
	cliLogger, _ := logger.New("MAZE-CLI", "", os.Stderr)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			cliLogger.Error(err.Error())
		}
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) > 0 && args[0] == "token" {
		return runToken(args[1:], out)
	}
	return runMaze(args, out)
}

type summary struct {
	Entry    maze.CellPosition   `json:"entry"`
	Goal     *maze.CellPosition  `json:"goal"`
	Distance *int                `json:"distance"`
	Path     []maze.CellPosition `json:"path"`
}

func runMaze(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("mazecli", flag.ContinueOnError)
	rows := fs.Int("rows", 30, "number of rows")
	cols := fs.Int("cols", 30, "number of columns")
	p := fs.Float64("p", maze.DefaultVerticalProb, "probability of each vertical wall")
	q := fs.Float64("q", maze.DefaultHorizontalProb, "probability of each horizontal wall")
	seed := fs.Int64("seed", 0, "random seed, 0 seeds from the clock")
	entry := fs.Int("entry", -1, "entry column on the top row, -1 picks one at random")
	asJSON := fs.Bool("json", false, "print the search summary as JSON instead of a drawing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	m, err := maze.Generate(*rows, *cols, maze.WallModel{VerticalProb: *p, HorizontalProb: *q}, rng)
	if err != nil {
		return err
	}

	var result maze.SearchResult
	if *entry < 0 {
		result = m.Search(rng)
	} else if result, err = m.SearchFrom(maze.CellPosition{Row: 0, Col: *entry}); err != nil {
		return err
	}

	path, err := m.ReconstructPath(result)
	if err != nil {
		return err
	}

	if *asJSON {
		s := summary{Entry: result.Entry, Path: maze.Forward(path)}
		if dist, ok := result.Distance(); ok {
			s.Goal = &result.Goal
			s.Distance = &dist
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	fmt.Fprintf(out, "seed %d, entry %s\n", *seed, result.Entry)
	if dist, ok := result.Distance(); ok {
		fmt.Fprintf(out, "goal %s at distance %d\n", result.Goal, dist)
	} else {
		fmt.Fprintln(out, "bottom row unreachable")
	}
	_, err = io.WriteString(out, m.RenderPath(result.Entry, path))
	return err
}

func runToken(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("mazecli token", flag.ContinueOnError)
	secret := fs.String("secret", "", "JWT signing secret")
	issuer := fs.String("issuer", "", "JWT issuer")
	subject := fs.String("subject", "operator", "token subject")
	ttl := fs.Duration("ttl", time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *secret == "" || *issuer == "" {
		return errors.New("token: -secret and -issuer are required")
	}

	signed, err := token.NewJwtService(*secret, *issuer).Issue(*subject, []string{i.ScopeMazeWrite}, *ttl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, signed)
	return err
}
