package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"iamcatalog/internal/arn"
	"iamcatalog/internal/aws"
	"iamcatalog/internal/catalog"
	"iamcatalog/internal/config"
	"iamcatalog/internal/publish"
	"iamcatalog/internal/services"
	"iamcatalog/internal/simulate"
)

// Clients creates the AWS clients the commands need. Each is only called
// when a command actually talks to that service.
type Clients struct {
	IAM       func(ctx context.Context) (IAMClient, error)
	S3        func(ctx context.Context) (publish.S3API, error)
	SSM       func(ctx context.Context) (publish.SSMAPI, error)
	AccountID func(ctx context.Context) (string, error)
}

// IAMClient is the part of IAM used for simulation and publishing
type IAMClient interface {
	simulate.API
	publish.IAMAPI
}

// DefaultClients returns clients backed by the shared SDK client cache
func DefaultClients() Clients {
	return Clients{
		IAM:       func(ctx context.Context) (IAMClient, error) { return aws.IAM(ctx) },
		S3:        func(ctx context.Context) (publish.S3API, error) { return aws.S3(ctx) },
		SSM:       func(ctx context.Context) (publish.SSMAPI, error) { return aws.SSM(ctx) },
		AccountID: aws.GetAccountID,
	}
}

// App holds the catalog, ARN defaults and client factories for one CLI run
type App struct {
	Settings *config.Settings
	Registry *catalog.Registry
	Resolver arn.Resolver

	Stdout io.Writer
	Stdin  io.Reader

	clients Clients
}

// New loads the catalog and resolves ARN defaults. The caller's account is
// only looked up when the settings ask for it.
func New(ctx context.Context, settings *config.Settings, clients Clients) (*App, error) {
	reg, err := catalog.LoadWithOverrides(settings.CatalogDir)
	if err != nil {
		return nil, fmt.Errorf("loading service catalog: %w", err)
	}

	aws.SetRegion(settings.Region)

	account := ""
	if settings.NeedsAccountLookup() {
		if clients.AccountID == nil {
			return nil, fmt.Errorf("account lookup requested but no STS client configured")
		}
		account, err = clients.AccountID(ctx)
		if err != nil {
			return nil, fmt.Errorf("AWS credential check failed (ensure valid credentials via env vars, IAM role, or SSO): %w", err)
		}
	}

	return &App{
		Settings: settings,
		Registry: reg,
		Resolver: settings.Resolver(account),
		Stdout:   os.Stdout,
		Stdin:    os.Stdin,
		clients:  clients,
	}, nil
}

// Service returns a builder for prefix using the app's ARN defaults
func (a *App) Service(prefix string) (*services.Service, error) {
	svc, err := services.New(a.Registry, prefix)
	if err != nil {
		return nil, err
	}
	svc.SetResolver(a.Resolver)
	return svc, nil
}

// Publisher returns a publisher able to reach every location given
func (a *App) Publisher(ctx context.Context, locations ...string) (*publish.Publisher, error) {
	p := &publish.Publisher{Stdout: a.Stdout, Stdin: a.Stdin}

	for _, location := range locations {
		target, err := publish.ParseTarget(location)
		if err != nil {
			return nil, err
		}

		switch target.Kind {
		case publish.KindS3:
			if p.S3 == nil && a.clients.S3 != nil {
				if p.S3, err = a.clients.S3(ctx); err != nil {
					return nil, err
				}
			}
		case publish.KindSSM:
			if p.SSM == nil && a.clients.SSM != nil {
				if p.SSM, err = a.clients.SSM(ctx); err != nil {
					return nil, err
				}
			}
		case publish.KindIAM:
			if p.IAM == nil && a.clients.IAM != nil {
				if p.IAM, err = a.clients.IAM(ctx); err != nil {
					return nil, err
				}
			}
		}
	}
	return p, nil
}

// Simulator returns a policy simulator bounded to concurrency parallel calls
func (a *App) Simulator(ctx context.Context, concurrency int) (*simulate.Simulator, error) {
	if a.clients.IAM == nil {
		return nil, fmt.Errorf("no IAM client configured")
	}
	client, err := a.clients.IAM(ctx)
	if err != nil {
		return nil, err
	}
	return simulate.New(client, concurrency), nil
}
