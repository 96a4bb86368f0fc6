// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh"

	"github.com/oelhwry/folio/config"
	"github.com/oelhwry/folio/internal/deploy"
	"github.com/oelhwry/folio/internal/i18n"
	"github.com/oelhwry/folio/internal/logging"
	"github.com/oelhwry/folio/internal/site"
)

// dialFunc and probeFunc are package-level so tests can replace the network.
var (
	dialFunc  = func(o deploy.Options) (deploy.Remote, error) { return deploy.Dial(o) }
	probeFunc = deploy.ProbeHostKey
	trustFunc = deploy.TrustHost
)

func deployOptions() deploy.Options {
	return deploy.Options{
		Host:       appConfig.Deploy.Host,
		Port:       appConfig.Deploy.Port,
		User:       appConfig.Deploy.User,
		KeyFile:    appConfig.Deploy.Key,
		KnownHosts: appConfig.Deploy.KnownHosts,
		Path:       appConfig.Deploy.Path,
	}
}

func newDeployCmd() *cobra.Command {
	defaults := config.Defaults()
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Export the site and upload it over SFTP",
		Long: `Exports the site into a temporary directory and uploads it to deploy.path
on deploy.host. The new tree is uploaded next to the live one and swapped in
with a rename, so visitors never see a half written site.

Unknown host keys are shown with their fingerprint and only added to
known_hosts after confirmation, or right away with --trust.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := deployOptions()
			if opts.Host == "" {
				return errors.New("no deploy host configured; set deploy.host or pass --deploy.host")
			}

			p, src, err := loadPortfolio(cmd)
			if err != nil {
				return err
			}
			staging, err := os.MkdirTemp("", "folio-deploy-")
			if err != nil {
				return err
			}
			defer func() { _ = os.RemoveAll(staging) }()

			renderer, err := site.New()
			if err != nil {
				return err
			}
			exported, err := renderer.Export(cmd.Context(), p, src, staging)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			printExportStats(cmd.OutOrStdout(), exported)

			trust, _ := cmd.Flags().GetBool("trust")
			remote, err := connect(cmd, opts, trust)
			if err != nil {
				return err
			}
			defer func() { _ = remote.Close() }()

			res, err := deploy.Upload(cmd.Context(), remote, staging, opts.Path)
			if err != nil {
				return fmt.Errorf("upload failed: %w", err)
			}
			target := opts.Host + ":" + opts.Path
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.deploy_done", res.Files, target))
			fmt.Fprintf(cmd.OutOrStdout(), "%s transferred\n", humanize.Bytes(uint64(res.Bytes)))
			if res.Replaced {
				logging.Infof("replaced the previous site at %s", target)
			}
			return nil
		},
	}
	cmd.Flags().String("deploy.host", "", "Target host")
	cmd.Flags().String("deploy.user", "", "SSH user")
	cmd.Flags().Int("deploy.port", defaults["deploy.port"].(int), "SSH port")
	cmd.Flags().String("deploy.key", "", "Private key file (the ssh agent is used when empty)")
	cmd.Flags().String("deploy.path", defaults["deploy.path"].(string), "Remote directory that serves the site")
	cmd.Flags().String("deploy.known_hosts", defaults["deploy.known_hosts"].(string), "known_hosts file (default ~/.ssh/known_hosts)")
	cmd.Flags().Bool("trust", false, "Trust an unknown host key without asking")
	addFromDBFlag(cmd)
	return cmd
}

// connect dials the target. An unknown host key is shown to the user and
// trusted only after confirmation, then the dial is retried once.
func connect(cmd *cobra.Command, opts deploy.Options, trust bool) (deploy.Remote, error) {
	remote, err := dialFunc(opts)
	if !errors.Is(err, deploy.ErrUnknownHost) {
		return remote, err
	}

	key, err := probeFunc(opts)
	if err != nil {
		return nil, err
	}
	errOut := cmd.ErrOrStderr()
	fmt.Fprintf(errOut, "The authenticity of host '%s' can't be established.\n", opts.Host)
	fmt.Fprintf(errOut, "%s key fingerprint is %s.\n", key.Type(), ssh.FingerprintSHA256(key))
	if !trust {
		answer := promptForConfirmation(cmd.InOrStdin(), errOut, "Trust this host and continue? (yes/no): ")
		if answer != "yes" && answer != "y" {
			return nil, fmt.Errorf("host key for %s was not trusted", opts.Host)
		}
	}
	if err := trustFunc(opts, key); err != nil {
		return nil, fmt.Errorf("could not record host key: %w", err)
	}
	logging.Infof("added %s to known_hosts", opts.Host)
	return dialFunc(opts)
}
