package mocks

import (
	"sync"
)

// SentEmail records one delivery attempt made through the mock.
type SentEmail struct {
	To      string
	Subject string
	Body    string
}

// MockNotificationService implements domain.NotificationService for
// testing. Every attempt is recorded, including failed ones, so tests
// can assert on best-effort deliveries from background goroutines.
type MockNotificationService struct {
	SendFunc func(to, subject, body string) error

	mu   sync.Mutex
	sent []SentEmail
}

// NewMockNotificationService creates a new MockNotificationService
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// Send records the attempt and delegates to SendFunc if set
func (m *MockNotificationService) Send(to, subject, body string) error {
	m.mu.Lock()
	m.sent = append(m.sent, SentEmail{To: to, Subject: subject, Body: body})
	m.mu.Unlock()

	if m.SendFunc != nil {
		return m.SendFunc(to, subject, body)
	}
	return nil
}

// Sent returns a copy of all recorded attempts
func (m *MockNotificationService) Sent() []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentEmail, len(m.sent))
	copy(out, m.sent)
	return out
}

// SentCount returns the number of recorded attempts
func (m *MockNotificationService) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}
