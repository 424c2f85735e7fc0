package cmd

import (
	"bufio"
	"fmt"
	"runtime"
	"strings"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdb-go/tmdb"
)

// repoSlug is the GitHub repository releases are published to
const repoSlug = "s0up4200/tmdb-go"

var (
	version   = "dev"
	buildTime = "unknown"

	checkOnly     bool
	loginUsername string
)

// SetVersion records the build metadata injected by the linker
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the connection to TMDB",
	Long:  `Test the connection and credentials by fetching the API configuration.`,
	Args:  cobra.NoArgs,
	RunE:  runTest,
}

var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print version information",
	Args:              cobra.NoArgs,
	PersistentPreRunE: skipInit,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "tmdbctl %s\n", displayVersion())
		fmt.Fprintf(out, "Build time: %s\n", buildTime)
		fmt.Fprintf(out, "Go: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:               "update",
	Short:             "Update tmdbctl to the latest release",
	Args:              cobra.NoArgs,
	PersistentPreRunE: skipInit,
	RunE:              runUpdate,
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Create a user session with a TMDB username and password",
	Long: `Log in with your TMDB account and print a session ID.

Store the session ID as tmdb.session_id in the config file (or TMDB_SESSION_ID)
to make authenticated requests.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

func init() {
	rootCmd.AddCommand(testCmd, versionCmd, updateCmd, loginCmd)

	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only check whether an update is available")
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "TMDB username")
}

// displayVersion normalises release versions and leaves dev builds alone
func displayVersion() string {
	v, err := semver.ParseTolerant(version)
	if err != nil {
		return version
	}
	return "v" + v.String()
}

func runTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Testing connection to TMDB at %s...\n", cfg.TMDB.BaseURL)

	apiCfg, err := client.Configuration.API(cmd.Context(), tmdb.NoCache())
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	fmt.Fprintln(out, "✓ Connection successful!")

	auth := "API key"
	if cfg.TMDB.APIKey == "" {
		auth = "access token"
	}
	fmt.Fprintf(out, "\nTMDB Configuration:\n")
	fmt.Fprintf(out, "- Authentication: %s\n", auth)
	fmt.Fprintf(out, "- Session: %s\n", boolToStatus(client.HasSession()))
	fmt.Fprintf(out, "- Language: %s\n", client.Language())
	fmt.Fprintf(out, "- Image base URL: %s\n", apiCfg.Images.SecureBaseURL)
	if len(apiCfg.Images.PosterSizes) > 0 {
		fmt.Fprintf(out, "- Poster sizes: %s\n", strings.Join(apiCfg.Images.PosterSizes, ", "))
	}
	fmt.Fprintf(out, "- Response cache: %s\n", boolToStatus(client.CacheEnabled()))

	if names := filters.ListFilters(); len(names) > 0 {
		fmt.Fprintf(out, "\nConfigured filters:\n")
		for _, name := range names {
			f, _ := filters.GetFilter(name)
			fmt.Fprintf(out, "  • %s: %s\n", name, f.Expression())
		}
	}

	return nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	current, err := semver.ParseTolerant(version)
	if err != nil {
		return fmt.Errorf("cannot update a development build (version %q)", version)
	}

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s/%s", runtime.GOOS, runtime.GOARCH)
	}

	latestVersion, err := semver.ParseTolerant(latest.Version())
	if err != nil {
		return fmt.Errorf("release has an invalid version %q: %w", latest.Version(), err)
	}

	if latestVersion.LTE(current) {
		fmt.Fprintf(out, "✓ tmdbctl v%s is up to date\n", current)
		return nil
	}

	fmt.Fprintf(out, "New version available: v%s (current v%s)\n", latestVersion, current)
	if checkOnly {
		if latest.ReleaseNotes != "" {
			fmt.Fprintf(out, "\n%s\n", latest.ReleaseNotes)
		}
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable: %w", err)
	}
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Fprintf(out, "✓ Updated to v%s\n", latestVersion)
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())

	username := loginUsername
	if username == "" {
		fmt.Fprint(out, "Username: ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read username: %w", err)
		}
		username = strings.TrimSpace(line)
	}

	fmt.Fprint(out, "Password: ")
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("failed to read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")

	sessionID, err := client.Auth.Authenticate(cmd.Context(), username, password)
	if err != nil {
		return err
	}

	logger.Info().Str("username", username).Msg("Logged in")
	fmt.Fprintf(out, "\n✓ Session created: %s\n", sessionID)
	fmt.Fprintln(out, "Set tmdb.session_id in your config (or TMDB_SESSION_ID) to use it.")
	return nil
}

func boolToStatus(b bool) string {
	if b {
		return "Enabled"
	}
	return "Disabled"
}
