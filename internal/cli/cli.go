package cli

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pfrederiksen/meet-tracker/internal/config"
	"github.com/pfrederiksen/meet-tracker/internal/logger"
	"github.com/pfrederiksen/meet-tracker/internal/meet"
	"github.com/pfrederiksen/meet-tracker/internal/notify"
	"github.com/pfrederiksen/meet-tracker/internal/scoring"
	"github.com/pfrederiksen/meet-tracker/internal/scrape"
	"github.com/pfrederiksen/meet-tracker/internal/storage"
)

var (
	flagMeetURL string
	flagDataDir string
	flagFormat  string
	flagDryRun  bool
	flagTeam    string
	flagGender  string
)

// NewRootCmd creates the meet-tracker command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "meet-tracker",
		Short: "Track live conference meet results and projections",
		Long: `Scrapes a live results provider for a track meet, computes actual team
scores, projections, and win probabilities, and reports finals completed
since the last check.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagMeetURL, "meet-url", "", "Meet base URL (overrides config)")
	root.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "Data directory for tracker state (overrides config)")
	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")

	check := &cobra.Command{
		Use:   "check",
		Short: "Scrape the meet once, analyze, and report new finals",
		RunE:  runCheck,
	}
	check.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print notifications instead of sending email")

	scenarios := &cobra.Command{
		Use:   "scenarios",
		Short: "Best/seeds-hold/worst-case projection for one team",
		RunE:  runScenarios,
	}
	scenarios.Flags().StringVar(&flagTeam, "team", "", "Team name (required)")
	scenarios.Flags().StringVar(&flagGender, "gender", "Women", "Division: Women or Men")
	scenarios.MarkFlagRequired("team")

	watch := &cobra.Command{
		Use:   "watch",
		Short: "Run check on the configured cadence until interrupted",
		RunE:  runWatch,
	}
	watch.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print notifications instead of sending email")

	root.AddCommand(check, scenarios, watch)
	return root
}

// app bundles the wired-up collaborators shared by all commands.
type app struct {
	cfg     *config.Config
	log     *logrus.Logger
	scraper *scrape.Scraper
	store   *storage.Storage
}

func buildApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagMeetURL != "" {
		cfg.MeetURL = strings.TrimRight(flagMeetURL, "/")
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}

	log := logger.Init(cfg.LogLevel)

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("initializing storage: %w", err)
	}

	scraper := scrape.New(scrape.Options{
		Delay:              cfg.RequestDelay,
		Timeout:            cfg.HTTPTimeout,
		Retries:            cfg.FetchRetries,
		AllCapsTeams:       cfg.AllCapsTeams,
		CombinedEventCodes: cfg.CombinedEventCodes,
	}, logger.WithComponent(log, "scrape"))

	return &app{cfg: cfg, log: log, scraper: scraper, store: store}, nil
}

func (a *app) newSimulator() *scoring.Simulator {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return scoring.NewSimulator(a.cfg.MonteCarloTrials, rng, logger.WithComponent(a.log, "scoring"))
}

func (a *app) notifier() notify.Notifier {
	if flagDryRun || a.cfg.Email.Sender == "" {
		return notify.NewDryRun(os.Stdout)
	}
	return notify.NewEmail(
		a.cfg.Email.Host, a.cfg.Email.Port,
		a.cfg.Email.Sender, a.cfg.Email.Password, a.cfg.Email.Recipient,
		logger.WithComponent(a.log, "notify"),
	)
}

// check runs one scrape-analyze-report cycle: fetch the snapshot, score
// both genders, diff against the persisted known finals, notify when
// something new completed, and persist the updated set.
func (a *app) check(w io.Writer) error {
	tracker, err := a.store.Load()
	if err != nil {
		return err
	}

	state, err := a.scraper.ScrapeMeet(a.cfg.MeetURL)
	if err != nil {
		return err
	}

	sim := a.newSimulator()
	women := scoring.Run(state, meet.Women, sim)
	men := scoring.Run(state, meet.Men, sim)

	newFinals, known := meet.DetectNewFinals(state, tracker.KnownSet())

	if len(newFinals) > 0 {
		digest := &notify.Digest{
			MeetName:  state.MeetName,
			NewFinals: newFinals,
			Women:     women,
			Men:       men,
		}
		if err := a.notifier().Notify(digest); err != nil {
			a.log.WithError(err).Error("notification failed")
		}
	}

	tracker.MeetName = state.MeetName
	tracker.SetKnown(known)
	if err := a.store.Save(tracker); err != nil {
		return err
	}

	return writeCheck(w, &CheckResult{
		CheckedAt: state.ScrapedAt,
		MeetName:  state.MeetName,
		NewFinals: newFinals,
		Women:     women,
		Men:       men,
	}, outputFormat())
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	return a.check(cmd.OutOrStdout())
}

func runScenarios(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}

	gender := meet.Women
	if strings.EqualFold(flagGender, string(meet.Men)) {
		gender = meet.Men
	}

	state, err := a.scraper.ScrapeMeet(a.cfg.MeetURL)
	if err != nil {
		return err
	}

	actual := scoring.ComputeActualScores(state, gender)
	scenario := scoring.ComputeTeamScenarios(flagTeam, actual, state, gender)

	return writeScenario(cmd.OutOrStdout(), scenario, outputFormat())
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}

	a.log.WithField("interval", a.cfg.RefreshInterval.String()).Info("watching meet")
	for {
		if err := a.check(cmd.OutOrStdout()); err != nil {
			// A failed cycle is reported and the loop keeps its cadence.
			a.log.WithError(err).Error("check failed")
		}
		time.Sleep(a.cfg.RefreshInterval)
	}
}

func outputFormat() OutputFormat {
	f := OutputFormat(strings.ToLower(flagFormat))
	if f != FormatText && f != FormatJSON {
		fmt.Fprintf(os.Stderr, "unknown format %q, using text\n", flagFormat)
		return FormatText
	}
	return f
}
