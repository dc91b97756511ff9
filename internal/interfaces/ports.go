package interfaces

import (
	"context"

	"pagemind/internal/entities"
)

// Completer generates a reply for a user message, optionally grounded in
// matched knowledge-base text. Key and model resolution (page override
// vs global default) happens behind this interface.
type Completer interface {
	Generate(ctx context.Context, userMessage, knowledgeContext string, page entities.PageConfig, global entities.GlobalConfig) (string, error)
}

// Messenger delivers text to a platform user on behalf of a page.
type Messenger interface {
	SendText(ctx context.Context, recipientID, text, accessToken string) error
}
