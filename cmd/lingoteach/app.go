// LingoTeach - language-teaching voice skill backend
// License: MIT

package main

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/lingoteach/lingoteach/pkg/cache"
	"github.com/lingoteach/lingoteach/pkg/config"
	"github.com/lingoteach/lingoteach/pkg/gateway"
	"github.com/lingoteach/lingoteach/pkg/logger"
	"github.com/lingoteach/lingoteach/pkg/pipeline"
	"github.com/lingoteach/lingoteach/pkg/prefs"
	"github.com/lingoteach/lingoteach/pkg/router"
)

// buildRouter constructs every gateway from configuration and wires the full
// request path. The returned cleanup releases any local resources.
func buildRouter(ctx context.Context, cfg *config.Config) (*router.Router, func(), error) {
	logger.SetLevel(logger.ParseLevel(cfg.LogLevel))

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, nil, fmt.Errorf("load AWS config: %w", err)
	}

	var translator gateway.Translator
	switch cfg.Translator {
	case config.TranslatorOpenAI:
		translator = gateway.NewOpenAITranslator(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	default:
		translator = gateway.NewAWSTranslator(awsCfg)
	}

	speaker := gateway.NewPollySpeaker(awsCfg)
	audioCache := cache.New(gateway.NewS3Store(awsCfg, cfg.Bucket))

	cleanup := func() {}
	var prefStore prefs.Store
	switch cfg.Prefs {
	case config.PrefsSQLite:
		sqliteStore, err := prefs.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		prefStore = sqliteStore
		cleanup = func() {
			if err := sqliteStore.Close(); err != nil {
				logger.WarnC("app", "Closing preference store: "+err.Error())
			}
		}
	case config.PrefsMemory:
		prefStore = prefs.NewMemoryStore()
	default:
		prefStore = prefs.NewDynamoStore(awsCfg, cfg.Table)
	}

	pipe := pipeline.New(translator, speaker, audioCache)
	rt := router.New(pipe, prefStore, audioCache, router.Options{
		CardSmallURL: cfg.CardSmallURL(),
		CardLargeURL: cfg.CardLargeURL(),
	})

	logger.InfoCF("app", "Router wired", map[string]any{
		"translator": cfg.Translator,
		"prefs":      cfg.Prefs,
		"bucket":     cfg.Bucket,
	})

	return rt, cleanup, nil
}
