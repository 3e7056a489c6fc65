package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/surveyor-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/surveyor-cli/internal/adapters/driven/recipients"
	"github.com/custodia-labs/surveyor-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/surveyor-cli/internal/adapters/driven/templates"
	"github.com/custodia-labs/surveyor-cli/internal/catalog"
	"github.com/custodia-labs/surveyor-cli/internal/config"
	"github.com/custodia-labs/surveyor-cli/internal/connectors/google"
	"github.com/custodia-labs/surveyor-cli/internal/connectors/google/docs"
	"github.com/custodia-labs/surveyor-cli/internal/connectors/google/drive"
	"github.com/custodia-labs/surveyor-cli/internal/connectors/google/forms"
	"github.com/custodia-labs/surveyor-cli/internal/connectors/google/gmail"
	"github.com/custodia-labs/surveyor-cli/internal/core/services"
	"github.com/custodia-labs/surveyor-cli/internal/render"
)

// loadConfig reads configuration from the environment with the file store
// as fallback. A missing config file is not an error.
func loadConfig() (*config.Config, error) {
	store, err := file.NewConfigStore("")
	if err != nil {
		return config.Load(nil)
	}
	return config.Load(store)
}

// liveServices holds every live adapter a command can need, plus the
// resources to release when the command finishes.
type liveServices struct {
	tokens oauth2.TokenSource

	formsClient *forms.Client
	driveStore  *drive.Store
	docsWriter  *docs.Writer
	mailer      *gmail.Mailer

	store *sqlite.Store
}

// Close releases held resources.
func (l *liveServices) Close() error {
	if l.store != nil {
		return l.store.Close()
	}
	return nil
}

// wireGoogle authorises against Google and constructs the API adapters.
// The Forms, Drive and Docs services share the main credentials; Gmail uses
// its own client secret and token cache so the send-only consent can be
// granted separately.
func wireGoogle(ctx context.Context, cfg *config.Config) (*liveServices, error) {
	creds, err := google.LoadCredentials(ctx, cfg.CredentialsFile, cfg.TokenPath, google.Scopes())
	if err != nil {
		return nil, fmt.Errorf("authorise: %w", err)
	}

	formsSvc, err := google.NewFormsService(ctx, creds.TokenSource)
	if err != nil {
		return nil, err
	}
	driveSvc, err := google.NewDriveService(ctx, creds.TokenSource)
	if err != nil {
		return nil, err
	}
	docsSvc, err := google.NewDocsService(ctx, creds.TokenSource)
	if err != nil {
		return nil, err
	}

	mailSource := creds.TokenSource
	if cfg.GmailCredentialsPath != cfg.CredentialsFile {
		gmailToken := filepath.Join(filepath.Dir(cfg.TokenPath), "gmail_token.json")
		gmailCreds, err := google.LoadCredentials(ctx, cfg.GmailCredentialsPath, gmailToken, google.Scopes())
		if err != nil {
			return nil, fmt.Errorf("authorise gmail: %w", err)
		}
		mailSource = gmailCreds.TokenSource
	}
	gmailSvc, err := google.NewGmailService(ctx, mailSource)
	if err != nil {
		return nil, err
	}

	return &liveServices{
		tokens:      creds.TokenSource,
		formsClient: forms.NewClient(formsSvc),
		driveStore:  drive.NewStore(driveSvc),
		docsWriter:  docs.NewWriter(docsSvc),
		mailer:      gmail.NewMailer(gmailSvc),
	}, nil
}

// wirePipeline builds the full pipeline from live adapters.
func wirePipeline(ctx context.Context, cfg *config.Config) (*services.PipelineService, *liveServices, error) {
	live, err := wireGoogle(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	live.store, err = sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open reminder store: %w", err)
	}

	sections := catalog.Sections()
	tmpls := templates.NewManager()

	builder := services.NewFormBuilderService(live.formsClient, render.NewBanner(), live.driveStore)
	distrib := services.NewDistributorService(live.mailer, tmpls, catalog.Title, sections)
	reminders := services.NewReminderScheduler(live.store.ReminderStore(), live.mailer, tmpls, catalog.Title)

	pipeline := services.NewPipelineService(
		&tokenSourceAuthenticator{live: live},
		recipients.NewCSVSource(cfg.CSVPath),
		builder,
		live.docsWriter,
		newTerminalPrompt(),
		distrib,
		reminders,
		services.PipelineOptions{
			Title:         catalog.Title,
			DocumentTitle: catalog.DocumentTitle,
			Sections:      sections,
			ReminderDelay: cfg.ReminderDelay,
		},
	)

	return pipeline, live, nil
}

// wireReminders builds just the reminder service for the remind subcommands.
func wireReminders(ctx context.Context, cfg *config.Config) (*services.ReminderScheduler, *liveServices, error) {
	live, err := wireGoogle(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	live.store, err = sqlite.NewStore(cfg.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("open reminder store: %w", err)
	}

	svc := services.NewReminderScheduler(
		live.store.ReminderStore(), live.mailer, templates.NewManager(), catalog.Title)
	return svc, live, nil
}
