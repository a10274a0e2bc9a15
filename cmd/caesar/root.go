package main

import (
	"CaesarCipher/internal/adapters/caesar"
	"CaesarCipher/internal/adapters/console"
	"CaesarCipher/internal/app"
	"CaesarCipher/internal/console/messages"
	"CaesarCipher/internal/core/domain"
	"CaesarCipher/internal/shared/config"
	"CaesarCipher/internal/shared/logger"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	phrase    string
	shift     int
	direction string
	noBanner  bool
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "caesar",
		Short: "Encrypt or decrypt a phrase with a Caesar shift",
		Long: `caesar rotates every ASCII letter of a phrase by a fixed shift,
keeping case and leaving everything else untouched.

Values not given as flags are asked for interactively. An empty answer
picks the default shown in brackets.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, in, out, errOut)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.phrase, "phrase", "p", "", "phrase to transform (skips the prompt)")
	f.IntVarP(&opts.shift, "shift", "s", domain.DefaultShift, "non-negative shift, reduced modulo 26 (skips the prompt)")
	f.StringVarP(&opts.direction, "direction", "d", "", "encrypt|e or decrypt|d (skips the prompt)")
	f.BoolVar(&opts.noBanner, "no-banner", false, "do not print the banner")

	return cmd
}

func run(cmd *cobra.Command, opts *rootOptions, in io.Reader, out, errOut io.Writer) error {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize Logger
	baseLogger := logger.NewWithWriter(errOut, cfg.IsDev(), cfg.LogLevel).
		With().
		Str("run_id", uuid.NewString()).
		Logger()
	baseLogger.Debug().
		Str("app_env", cfg.AppEnv).
		Int("default_shift", cfg.DefaultShift).
		Msg("Configuration loaded")

	// 3. Resolve flags that skip prompts
	overrides, err := opts.overrides(cmd)
	if err != nil {
		return err
	}

	// 4. Initialize services
	cipherSvc := caesar.NewCaesarService(&baseLogger)
	prompter := console.NewPrompter(in, out, console.Defaults{
		Phrase: cfg.DefaultPhrase,
		Shift:  cfg.DefaultShift,
	}, &baseLogger)
	session := app.NewSession(cipherSvc, prompter, messages.NewRenderer(""), out, !opts.noBanner, &baseLogger)

	// 5. Run
	if _, err := session.Run(cmd.Context(), overrides); err != nil {
		// main reports the error to the user.
		baseLogger.Debug().Err(err).Msg("Session failed")
		return err
	}
	return nil
}

// overrides returns only the flags the user actually set.
func (o *rootOptions) overrides(cmd *cobra.Command) (app.Overrides, error) {
	var res app.Overrides
	flags := cmd.Flags()

	if flags.Changed("phrase") {
		phrase := o.phrase
		res.Phrase = &phrase
	}

	if flags.Changed("shift") {
		if o.shift < 0 {
			return res, fmt.Errorf("invalid --shift %d: must not be negative", o.shift)
		}
		shift := o.shift
		res.Shift = &shift
	}

	if flags.Changed("direction") {
		dir, err := domain.ParseDirection(o.direction)
		if err != nil {
			return res, fmt.Errorf("invalid --direction: %w", err)
		}
		res.Direction = &dir
	}

	return res, nil
}
