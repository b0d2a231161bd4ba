package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/storeparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const arityCountKey = "count"

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the derived selector arity variants",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Maximum number of input selectors to generate",
				Value: 6,
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for selector started")
	defer func() {
		log.Printf("Codegen for selector finished in %v", time.Since(start))
	}()

	arityCount := cmd.Uint(arityCountKey)
	log.Printf("Arity count: %d", arityCount)

	contents := templates.DeriveGen(int(arityCount))
	return os.WriteFile("selector/derive.go", []byte(contents), 0644)
}
