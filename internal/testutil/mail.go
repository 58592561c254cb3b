// AngelaMos | 2026
// mail.go

package testutil

import (
	"context"
	"sync"

	"github.com/carterperez-dev/templates/contacts-api/internal/mail"
)

// MailRecorder keeps every message it is asked to send. When Err is set,
// Send fails with it and records nothing.
type MailRecorder struct {
	mu   sync.Mutex
	sent []mail.Message
	Err  error
}

func (m *MailRecorder) Send(_ context.Context, msg mail.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *MailRecorder) Sent() []mail.Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]mail.Message, len(m.sent))
	copy(out, m.sent)
	return out
}

func (m *MailRecorder) Last() (mail.Message, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.sent) == 0 {
		return mail.Message{}, false
	}
	return m.sent[len(m.sent)-1], true
}
