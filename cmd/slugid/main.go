// Command slugid prints freshly generated slugids, one per line.
//
//	slugid [-nice] [-n count]
//	slugid -token client-id [-s secret]
//
// In token mode it prints a bearer token for the slugid server instead. The
// secret falls back to JWT_SECRET.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MikhailRaia/slugid"
	"github.com/MikhailRaia/slugid/internal/auth"
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type tokenEnv struct {
	JWTSecret string `env:"JWT_SECRET"`
}

func run(args []string, stdout io.Writer, src slugid.Source) error {
	fs := flag.NewFlagSet("slugid", flag.ContinueOnError)
	nice := fs.Bool("nice", false, "Generate nice slugids that start with [A-Za-f]")
	count := fs.Int("n", 1, "Number of slugids to generate")
	client := fs.String("token", "", "Print a bearer token for this client ID instead of slugids")
	secret := fs.String("s", "", "JWT secret used to sign -token (default $JWT_SECRET)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	if *client != "" {
		return printToken(stdout, src, *client, *secret)
	}

	if *count < 1 {
		return fmt.Errorf("invalid count %d", *count)
	}

	mode := slugid.ModeV4
	if *nice {
		mode = slugid.ModeNice
	}

	w := bufio.NewWriter(stdout)
	for i := 0; i < *count; i++ {
		id, err := slugid.Generate(src, mode)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, id)
	}
	return w.Flush()
}

func printToken(stdout io.Writer, src slugid.Source, clientID, secret string) error {
	if secret == "" {
		var e tokenEnv
		if err := env.Parse(&e); err != nil {
			return fmt.Errorf("parse env: %w", err)
		}
		secret = e.JWTSecret
	}
	if secret == "" {
		return errors.New("token mode needs a secret: pass -s or set JWT_SECRET")
	}

	token, err := auth.NewJWTService(secret, src).GenerateToken(clientID)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, token)
	return err
}

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := run(os.Args[1:], os.Stdout, slugid.Default()); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal().Err(err).Msg("slugid failed")
	}
}
