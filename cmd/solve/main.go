package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/input"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/runner"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/setup"
	"github.com/povarna/generative-ai-with-go/advent-of-code/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	envErr := godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = logger.NewConsole(os.Getenv("LOG_LEVEL"))
	if envErr != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	year := flag.Int("year", 2022, "Event year")
	day := flag.Int("day", 0, "Day to solve (1-25)")
	kind := flag.String("kind", string(input.KindInputs), "Stored input kind: 'inputs' or 'examples'")
	inputFile := flag.String("inputFile", "", "Relative path to the input file; overrides -kind")

	flag.Parse()

	if *day == 0 {
		log.Fatal().Msg("required flag -day not provided")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := setup.LoadConfig()

	deps, err := setup.Wire(cfg, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}
	log.Logger = *deps.Logger

	var result runner.Result
	if *inputFile != "" {
		bytes, err := os.ReadFile(*inputFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", *inputFile).Msg("Unable to read the input file")
		}
		result, err = deps.Runner.SolveText(ctx, *year, *day, string(bytes))
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to solve puzzle")
		}
	} else {
		inputKind, err := input.ParseKind(*kind)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid -kind")
		}
		result, err = deps.Runner.Solve(ctx, runner.Request{Year: *year, Day: *day, Kind: inputKind})
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to solve puzzle")
		}
	}

	for _, part := range result.Parts {
		if !part.Solved {
			fmt.Printf("AoC %d, Day%02d part%d has no answer: %s\n", result.Year, result.Day, part.Part, part.Error)
			continue
		}
		fmt.Printf("AoC %d, Day%02d part%d solution is: %d\n", result.Year, result.Day, part.Part, part.Answer)
	}
}
