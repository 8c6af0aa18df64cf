package cli

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AndreyAkinshin/cgoconf/internal/config"
	"github.com/AndreyAkinshin/cgoconf/internal/configure"
	"github.com/AndreyAkinshin/cgoconf/internal/errors"
	"github.com/AndreyAkinshin/cgoconf/internal/logging"
	"github.com/AndreyAkinshin/cgoconf/internal/output"
	"github.com/AndreyAkinshin/cgoconf/internal/toolchain"
)

type resolveOptions struct {
	toolchain   string
	format      string
	fingerprint bool
}

func (a *app) newResolveCmd() *cobra.Command {
	var opts resolveOptions

	cmd := &cobra.Command{
		Use:   "resolve <request-file>",
		Short: "Resolve the cgo configuration of a request file",
		Long: `Resolve reads a request file (JSON, YAML or TOML), resolves it against the
selected toolchain and prints the resulting option lists and inputs.

The toolchain is taken from --toolchain, then from the request file, then
defaults to linux-gcc. Use --toolchain auto to detect it from the host.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.resolve(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.toolchain, "toolchain", "t", "", "Toolchain to resolve against (overrides the request file; 'auto' detects the host)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(output.FormatText), "Output format: text, json or yaml")
	cmd.Flags().BoolVar(&opts.fingerprint, "fingerprint", false, "Include the configuration fingerprint")

	return cmd
}

func (a *app) resolve(path string, opts resolveOptions) error {
	format, err := output.ParseFormat(opts.format)
	if err != nil {
		return errors.Config(err.Error())
	}

	logger := logging.GetLogger("resolve")
	done := logging.LogOperationStart(logger, "resolve")
	defer done()

	cfg, err := a.loadRequest(path)
	if err != nil {
		return err
	}

	name := cfg.Toolchain
	if opts.toolchain != "" {
		name = opts.toolchain
	}
	tc, err := a.resolveToolchain(name)
	if err != nil {
		return err
	}

	req, err := cfg.ToRequest()
	if err != nil {
		return errors.Validation(err)
	}

	resolver := configure.NewResolver(configure.WithLogger(logging.GetLogger("configure")))
	res, err := resolver.Resolve(tc, req)
	if err != nil {
		return err
	}

	fingerprint := ""
	if opts.fingerprint {
		fingerprint = res.Fingerprint()
	}
	return a.out.Configuration(res.Configuration(), fingerprint, format)
}

// loadRequest loads and validates a request file, printing its warnings.
func (a *app) loadRequest(path string) (*config.RequestFile, error) {
	cfg, warnings, err := config.LoadAndValidate(path)
	for _, w := range warnings {
		a.out.Warning("%s", w)
	}
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(err, "load request")
		}
		return nil, &errors.CgoconfError{
			Kind:    errors.KindValidation,
			Message: err.Error(),
			Target:  path,
			Cause:   err,
		}
	}
	return cfg, nil
}

// resolveToolchain finds name among the builtin, user and project
// toolchains. "auto" detects the host toolchain.
func (a *app) resolveToolchain(name string) (*toolchain.Toolchain, error) {
	if name == toolchain.AutoToolchain {
		detected, ok := toolchain.Detect(toolchain.CurrentHost())
		if !ok {
			return nil, &errors.CgoconfError{
				Kind:    errors.KindEnvironment,
				Message: "cannot detect a toolchain for this host",
			}
		}
		logger := logging.GetLogger("toolchain")
		logger.Info().Str("toolchain", detected).Msg("Detected host toolchain")
		name = detected
	}

	file, err := toolchain.LoadToolchains(a.opts.ProjectRoot)
	if err != nil {
		return nil, errors.Validation(err)
	}
	r, err := toolchain.NewResolver(file)
	if err != nil {
		return nil, err
	}
	tc, err := r.Resolve(name)
	if err != nil {
		return nil, &errors.CgoconfError{
			Kind:    errors.KindConfig,
			Message: fmt.Sprintf("%s (available: %s)", err, strings.Join(r.Names(), ", ")),
			Cause:   err,
		}
	}
	return tc, nil
}

func (a *app) newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <request-file>",
		Short: "Check a request file without resolving it",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadRequest(args[0])
			if err != nil {
				return err
			}
			if _, err := a.resolveToolchain(cfg.Toolchain); err != nil {
				return err
			}
			a.out.ValidationSuccess("%s is valid (%d dependencies, toolchain %s)", args[0], len(cfg.Deps), cfg.Toolchain)
			return nil
		},
	}
}

func (a *app) newToolchainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toolchains",
		Short: "List the available toolchains",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := toolchain.LoadToolchains(a.opts.ProjectRoot)
			if err != nil {
				return errors.Validation(err)
			}
			r, err := toolchain.NewResolver(file)
			if err != nil {
				return err
			}

			var rows [][]string
			for _, name := range r.Names() {
				tc, _ := r.Resolve(name)
				cgo := "yes"
				if !tc.SupportsCgo() {
					cgo = "no"
				}
				source := "custom"
				if toolchain.IsBuiltin(name) {
					source = "builtin"
				}
				rows = append(rows, []string{name, tc.OS, cgo, tc.Extends, source})
			}
			a.out.Table([]string{"NAME", "OS", "CGO", "EXTENDS", "SOURCE"}, rows)

			if detected, ok := toolchain.Detect(toolchain.CurrentHost()); ok {
				a.out.Hint("\nhost toolchain: %s", detected)
			}
			return nil
		},
	}
}

func (a *app) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  exactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			a.out.Println("cgoconf %s", Version)
		},
	}
}

// exactArgs reports a wrong argument count as a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return errors.Configf("%s: %v (see '%s --help')", cmd.Name(), err, cmd.CommandPath())
		}
		return nil
	}
}
