package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Tomas-vilte/MateLogs/internal/cli/command/interpret"
	cfg "github.com/Tomas-vilte/MateLogs/internal/config"
	"github.com/Tomas-vilte/MateLogs/internal/i18n"
	"github.com/Tomas-vilte/MateLogs/internal/infrastructure/action"
	"github.com/Tomas-vilte/MateLogs/internal/infrastructure/ai/deepseek"
	"github.com/Tomas-vilte/MateLogs/internal/infrastructure/vcs/github"
	"github.com/Tomas-vilte/MateLogs/internal/logger"
	"github.com/Tomas-vilte/MateLogs/internal/services"
	"github.com/Tomas-vilte/MateLogs/internal/version"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

func main() {
	// Para correr el paso localmente con un .env; en el runner no existe y no hace nada.
	_ = godotenv.Load()

	runtime := action.NewRuntime()

	app, err := initializeApp(runtime)
	if err != nil {
		runtime.Error(err.Error())
		os.Exit(1)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		// Única frontera de error del run: cualquier falla marca el paso como
		// fallido ante el runner con el mensaje original.
		runtime.Error(err.Error())
		os.Exit(1)
	}
}

func initializeApp(runtime *action.Runtime) (*cli.Command, error) {
	cfgApp := cfg.Resolve(runtime)

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, fmt.Errorf("error al cargar las traducciones: %w", err)
	}

	runCtx, err := runtime.RunContext()
	if err != nil {
		return nil, fmt.Errorf(translations.GetMessage("error.run_context", 0, nil)+": %w", err)
	}

	log := logger.New(os.Stderr)

	interpreter := deepseek.NewClient(cfgApp.DeepSeekAPIKey)
	vcsClient := github.NewGitHubClient(runCtx.Owner, runCtx.Repo, cfgApp.GitHubToken)
	service := services.NewInterpretationService(interpreter, vcsClient, runtime, os.Stdout, translations)

	interpretCommand := interpret.NewInterpretCommand(service, runCtx, log)

	app := &cli.Command{
		Name:           "matelogs",
		Usage:          translations.GetMessage("app_usage", 0, nil),
		Version:        version.FullVersion(),
		DefaultCommand: "interpret",
		Commands: []*cli.Command{
			interpretCommand.CreateCommand(translations, cfgApp),
		},
	}

	return app, nil
}
