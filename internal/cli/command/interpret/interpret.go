package interpret

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	cfg "github.com/Tomas-vilte/MateLogs/internal/config"
	"github.com/Tomas-vilte/MateLogs/internal/domain/models"
	"github.com/Tomas-vilte/MateLogs/internal/domain/ports"
	"github.com/Tomas-vilte/MateLogs/internal/i18n"
	"github.com/Tomas-vilte/MateLogs/internal/infrastructure/ai/deepseek"
	"github.com/Tomas-vilte/MateLogs/internal/services"
	"github.com/urfave/cli/v3"
)

type InterpretCommand struct {
	service ports.InterpretationService
	runCtx  models.RunContext
	logger  *slog.Logger
}

func NewInterpretCommand(service ports.InterpretationService, runCtx models.RunContext, logger *slog.Logger) *InterpretCommand {
	return &InterpretCommand{
		service: service,
		runCtx:  runCtx,
		logger:  logger,
	}
}

func (c *InterpretCommand) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "interpret",
		Aliases: []string{"i"},
		Usage:   t.GetMessage("interpret_command_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-file",
				Aliases: []string{"f"},
				Usage:   t.GetMessage("log_file_flag_usage", 0, nil),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logContent := config.LogContent
			if path := cmd.String("log-file"); path != "" {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf(t.GetMessage("error.log_file_read", 0, nil)+": %w", err)
				}
				logContent = string(data)
			}

			c.logger.Info(t.GetMessage("ui.interpreting_log", 0, map[string]interface{}{
				"Model": deepseek.DefaultModel,
			}))

			result := c.service.Run(ctx, logContent, c.runCtx)
			if !result.Succeeded() {
				return errors.New(result.FailureMessage)
			}

			if c.runCtx.HasPR() {
				c.logger.Info(t.GetMessage("ui.comment_posted", 0, map[string]interface{}{
					"Number": *c.runCtx.PRNumber,
				}))
			}
			c.logger.Info(t.GetMessage("ui.output_published", 0, map[string]interface{}{
				"Name": services.OutputName,
			}))
			return nil
		},
	}
}
