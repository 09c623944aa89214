package notification

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (m *fakeMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return m.err
}

type fakeSettings struct {
	adminEmail string
	enabled    bool
	err        error
}

func (s *fakeSettings) AdminEmail() (string, error) {
	return s.adminEmail, s.err
}

func (s *fakeSettings) AdminNotificationsEnabled() (bool, error) {
	return s.enabled, s.err
}

func testGateway(m *fakeMailer, s *fakeSettings) *emailGateway {
	return &emailGateway{
		mailer:   m,
		settings: s,
		now: func() time.Time {
			return time.Date(2026, 3, 1, 10, 15, 30, 0, time.UTC)
		},
	}
}

func testRegistrant() Registrant {
	return Registrant{
		FullName:    "John Smith",
		Email:       "john@example.com",
		CollegeName: "State College",
		Department:  "Computer Science",
		Category:    "Hackathon",
		EventDate:   time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testEvent() EventDetails {
	return EventDetails{
		EventName: "Spring Hackathon",
		EventDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestSendConfirmation(t *testing.T) {
	m := &fakeMailer{}
	g := testGateway(m, &fakeSettings{enabled: true})

	require.NoError(t, g.SendConfirmation(testRegistrant(), testEvent()))
	require.Len(t, m.sent, 1)

	mail := m.sent[0]
	require.Equal(t, "john@example.com", mail.to)
	require.Equal(t, "Event Registration Confirmation", mail.subject)
	require.Contains(t, mail.body, "Dear John Smith,")
	require.Contains(t, mail.body, "Event Name: Spring Hackathon")
	require.Contains(t, mail.body, "Event Date: 2026-05-01")
	require.Contains(t, mail.body, "Category: Hackathon")
	require.Contains(t, mail.body, "College: State College")
	require.Contains(t, mail.body, "Department: Computer Science")
	require.Contains(t, mail.body, "Event Management Team")
	// The registrant's own address is not echoed in their confirmation.
	require.NotContains(t, mail.body, "john@example.com")
}

func TestSendAdminNotice(t *testing.T) {
	m := &fakeMailer{}
	g := testGateway(m, &fakeSettings{adminEmail: "admin@example.com", enabled: true})

	require.NoError(t, g.SendAdminNotice(testRegistrant(), testEvent()))
	require.Len(t, m.sent, 1)

	mail := m.sent[0]
	require.Equal(t, "admin@example.com", mail.to)
	require.Equal(t, "New Event Registration Received", mail.subject)
	require.Contains(t, mail.body, "Name: John Smith")
	require.Contains(t, mail.body, "Email: john@example.com")
	require.Contains(t, mail.body, "Event Name: Spring Hackathon")
	require.Contains(t, mail.body, "Registration Time: 2026-03-01 10:15:30")
}

// Disabled notifications and a missing admin address are success no-ops,
// not failures.
func TestSendAdminNoticeDisabled(t *testing.T) {
	m := &fakeMailer{}
	g := testGateway(m, &fakeSettings{adminEmail: "admin@example.com", enabled: false})

	require.NoError(t, g.SendAdminNotice(testRegistrant(), testEvent()))
	require.Empty(t, m.sent)
}

func TestSendAdminNoticeNoAddress(t *testing.T) {
	m := &fakeMailer{}
	g := testGateway(m, &fakeSettings{adminEmail: "", enabled: true})

	require.NoError(t, g.SendAdminNotice(testRegistrant(), testEvent()))
	require.Empty(t, m.sent)
}

func TestSendErrorsPropagate(t *testing.T) {
	m := &fakeMailer{err: fmt.Errorf("smtp connect refused")}
	g := testGateway(m, &fakeSettings{adminEmail: "admin@example.com", enabled: true})

	require.Error(t, g.SendConfirmation(testRegistrant(), testEvent()))
	require.Error(t, g.SendAdminNotice(testRegistrant(), testEvent()))
}

func TestSettingsErrorPropagates(t *testing.T) {
	m := &fakeMailer{}
	g := testGateway(m, &fakeSettings{err: fmt.Errorf("db unavailable")})

	require.Error(t, g.SendAdminNotice(testRegistrant(), testEvent()))
	require.Empty(t, m.sent)
}
