package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"pagemind/internal/entities"
	"pagemind/internal/infrastructure"
	"pagemind/internal/interfaces"
	"pagemind/internal/repository"
)

// fallbackReply is the only failure text an end user ever sees; raw
// errors stay in the event log and console.
const fallbackReply = "Sorry, I'm having trouble answering right now. Please try again in a moment."

// PipelineService orchestrates webhook verification and inbound event
// processing: tenant resolution, knowledge matching, completion, and
// reply dispatch with fallback on error.
type PipelineService struct {
	pages     *repository.PageRepository
	settings  *repository.SettingsRepository
	knowledge *repository.KnowledgeRepository
	completer interfaces.Completer
	messenger interfaces.Messenger
	events    *infrastructure.EventLog
	log       *logrus.Logger
}

func NewPipelineService(
	pages *repository.PageRepository,
	settings *repository.SettingsRepository,
	knowledge *repository.KnowledgeRepository,
	completer interfaces.Completer,
	messenger interfaces.Messenger,
	events *infrastructure.EventLog,
	log *logrus.Logger,
) *PipelineService {
	return &PipelineService{
		pages:     pages,
		settings:  settings,
		knowledge: knowledge,
		completer: completer,
		messenger: messenger,
		events:    events,
		log:       log,
	}
}

// VerifyWebhook handles the subscription handshake. It returns the
// challenge to echo and whether the attempt was accepted. The raw token
// is never logged.
func (s *PipelineService) VerifyWebhook(mode, token, challenge string) (string, bool) {
	matched := false
	pageName := ""
	if mode == "subscribe" {
		for _, p := range s.pages.LoadPages() {
			if p.VerifyToken == token {
				matched = true
				pageName = p.Name
				break
			}
		}
	}

	data := map[string]interface{}{"mode": mode, "matched": matched}
	if pageName != "" {
		data["page"] = pageName
	}
	s.events.Add(entities.LogVerification, data)
	s.log.WithFields(logrus.Fields{"mode": mode, "matched": matched}).Info("Webhook verification attempt")

	if !matched {
		return "", false
	}
	return challenge, true
}

// ProcessEvent walks one webhook delivery sequentially: entry by entry,
// message by message. It never returns an error; every failure ends up
// in the event log.
func (s *PipelineService) ProcessEvent(ctx context.Context, event entities.WebhookEvent) {
	if event.Object != "page" {
		s.log.WithField("object", event.Object).Debug("Ignoring webhook object")
		return
	}

	s.events.Add(entities.LogReceived, map[string]interface{}{
		"object":  event.Object,
		"entries": len(event.Entry),
	})

	pages := s.pages.LoadPages()
	global := s.settings.LoadGlobal()

	for _, entry := range event.Entry {
		if entry.ID == "" {
			continue
		}

		page, found := resolveTenant(pages, entry.ID)
		if !found {
			s.events.Add(entities.LogSkip, map[string]interface{}{"reason": "no matching page", "entryId": entry.ID})
			s.log.WithField("entryId", entry.ID).Warn("No page configured for webhook entry")
			continue
		}
		if !page.Enabled {
			s.events.Add(entities.LogSkip, map[string]interface{}{"reason": "page disabled", "page": page.Name})
			s.log.WithField("page", page.Name).Info("Skipping disabled page")
			continue
		}

		for _, msg := range entry.Messaging {
			text := msg.Text()
			if text == "" {
				continue
			}
			s.handleMessage(ctx, page, global, msg.Sender.ID, text)
		}
	}
}

// TestMessage runs the knowledge + completion path for an operator
// without dispatching anything. An empty pageID uses only the global
// configuration.
func (s *PipelineService) TestMessage(ctx context.Context, pageID, message string) (string, error) {
	var page entities.PageConfig
	if pageID != "" {
		p, ok := s.pages.Find(pageID)
		if !ok {
			return "", fmt.Errorf("page %s not found", pageID)
		}
		page = p
	}

	knowledgeContext := SearchKnowledge(message, s.knowledge.ListDocuments())
	return s.completer.Generate(ctx, message, knowledgeContext, page, s.settings.LoadGlobal())
}

func (s *PipelineService) handleMessage(ctx context.Context, page entities.PageConfig, global entities.GlobalConfig, senderID, text string) {
	s.events.Add(entities.LogMessage, map[string]interface{}{
		"page":   page.Name,
		"sender": senderID,
		"text":   text,
	})
	s.log.WithFields(logrus.Fields{"page": page.Name, "sender": senderID}).Info("Processing message")

	knowledgeContext := SearchKnowledge(text, s.knowledge.ListDocuments())

	reply, err := s.completer.Generate(ctx, text, knowledgeContext, page, global)
	if err != nil {
		s.events.Add(entities.LogError, map[string]interface{}{
			"page":  page.Name,
			"stage": "completion",
			"error": err.Error(),
		})
		s.log.WithError(err).WithField("page", page.Name).Error("Completion failed")
		reply = fallbackReply
	}

	s.dispatch(ctx, page, senderID, reply)
}

func (s *PipelineService) dispatch(ctx context.Context, page entities.PageConfig, recipientID, text string) {
	if err := s.messenger.SendText(ctx, recipientID, text, page.PageAccessToken); err != nil {
		s.events.Add(entities.LogError, map[string]interface{}{
			"page":  page.Name,
			"stage": "send",
			"error": err.Error(),
		})
		s.log.WithError(err).WithField("page", page.Name).Error("Reply dispatch failed")
		return
	}

	s.events.Add(entities.LogSent, map[string]interface{}{
		"page":      page.Name,
		"recipient": recipientID,
		"text":      text,
	})
}

// resolveTenant matches a webhook entry to a configured page: either
// the entry id equals the page id, or the page's access token contains
// the entry id (tokens issued per page embed the page id).
func resolveTenant(pages []entities.PageConfig, entryID string) (entities.PageConfig, bool) {
	for _, p := range pages {
		if p.ID == entryID || strings.Contains(p.PageAccessToken, entryID) {
			return p, true
		}
	}
	return entities.PageConfig{}, false
}
