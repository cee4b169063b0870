package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"chat-agent/models"
	"chat-agent/providers"
	"chat-agent/tools"
)

// Agent turns one chat message into one reply: sanitize, classify, then
// either a tool lookup plus formatting or the general chat fallback.
// It holds no per-request state and is safe for concurrent use.
type Agent struct {
	classifier *Classifier
	selector   *Selector
	formatter  *Formatter
	chat       *GeneralChat
	log        *logrus.Logger
}

// NewAgent wires the agent's components around provider and registry
func NewAgent(provider providers.Provider, registry *tools.Registry, logger *logrus.Logger) *Agent {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Agent{
		classifier: NewClassifier(provider),
		selector:   NewSelector(provider, registry),
		formatter:  NewFormatter(provider),
		chat:       NewGeneralChat(provider),
		log:        logger,
	}
}

// Run handles a chat request from the transport layer
func (a *Agent) Run(ctx context.Context, req models.ChatRequest) (*models.ChatReply, error) {
	reply, err := a.Handle(ctx, req.Message(), req.History())
	if err != nil {
		return nil, err
	}
	return &models.ChatReply{Reply: reply}, nil
}

// Handle produces the Markdown reply for message given the prior turns.
// An unrecognized category falls back to general chat; every other failure
// aborts the request.
func (a *Agent) Handle(ctx context.Context, message string, history []models.Message) (string, error) {
	question := Sanitize(message)

	category, err := a.classifier.Classify(ctx, question)
	if err != nil {
		var classErr *ClassificationError
		if !errors.As(err, &classErr) {
			return "", err
		}
		a.log.WithField("token", classErr.Token).Warn("Unrecognized intent category, falling back to general chat")
		category = models.CategoryGeneral
	}

	entry := a.log.WithField("category", category)
	entry.Debug("Classified message")

	switch category {
	case models.CategoryGeneral:
		return a.chat.Chat(ctx, question, history)
	case models.CategoryWeather, models.CategoryStocks, models.CategorySports:
		outcome, err := a.selector.SelectAndInvoke(ctx, category, question)
		if err != nil {
			entry.WithError(err).Error("Tool selection failed")
			return "", err
		}
		entry.WithField("tool", outcome.Tool).Info("Tool executed")
		return a.formatter.Format(ctx, a.dataLabel(entry, category, outcome.Tool), outcome.Result, question)
	default:
		return "", fmt.Errorf("unhandled category %q", category)
	}
}

// dataLabel names the data for the formatter after the tool that produced
// it, which can differ from the classified category.
func (a *Agent) dataLabel(entry *logrus.Entry, category models.Category, tool string) string {
	used, ok := models.CategoryForTool(tool)
	if !ok {
		return category.Label()
	}
	if used != category {
		entry.WithField("tool", tool).Warn("Selected tool does not match the classified category")
	}
	return used.Label()
}
