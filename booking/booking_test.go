package booking

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jay-rajapure/Blue-Collar-Worker-Service/client"
	"github.com/jay-rajapure/Blue-Collar-Worker-Service/session"
)

// Shared fakes for the booking component tests.

type fakeNotifier struct {
	successes []string
	errors    []string
	infos     []string
}

func (n *fakeNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *fakeNotifier) Error(message string)   { n.errors = append(n.errors, message) }
func (n *fakeNotifier) Info(message string)    { n.infos = append(n.infos, message) }

type fakeConfirmer struct {
	answer bool
	asked  []string
}

func (c *fakeConfirmer) Confirm(title, message string) bool {
	c.asked = append(c.asked, title)
	return c.answer
}

type fakeNavigator struct {
	pages []string
}

func (n *fakeNavigator) NavigateTo(page string) { n.pages = append(n.pages, page) }

// apiFor wires a client against an httptest server with a logged-in session.
func apiFor(t *testing.T, server *httptest.Server) (*client.Client, *session.Memory) {
	t.Helper()
	sess := &session.Memory{}
	require.NoError(t, sess.Set(&session.Session{AuthToken: "test-token", UserID: 7}))
	return client.New(server.URL, sess), sess
}
