// console/util/navigator.go

package util

import (
	"context"
	"net/url"
	"sync"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/aptmgr/console/logging"
)

const LoginRoute = "/auth/login"

// Redirect describes a navigation the front end should perform.
type Redirect struct {
	Path        string `json:"path"`
	ReturnURL   string `json:"returnUrl,omitempty"`
	Destination string `json:"destination"`
}

// Navigator tracks the current console location and announces redirects on
// the event bus. Front ends pick them up from the session endpoint.
type Navigator struct {
	mu       sync.RWMutex
	location string
	pending  *Redirect
	eventBus *EventBus
}

func NewNavigator(eventBus *EventBus) *Navigator {
	return &Navigator{location: "/", eventBus: eventBus}
}

func (n *Navigator) SetLocation(location string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.location = location
}

func (n *Navigator) Location() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.location
}

// RedirectToLogin records a redirect to the login route carrying the current
// location as returnUrl.
func (n *Navigator) RedirectToLogin(ctx context.Context) Redirect {
	n.mu.Lock()
	returnURL := n.location
	redirect := Redirect{Path: LoginRoute, ReturnURL: returnURL, Destination: LoginRoute}
	if returnURL != "" && returnURL != LoginRoute {
		redirect.Destination = LoginRoute + "?" + url.Values{"returnUrl": {returnURL}}.Encode()
	} else {
		redirect.ReturnURL = ""
	}
	n.pending = &redirect
	n.location = LoginRoute
	n.mu.Unlock()

	logger.Info("Redirecting to login", zap.String("returnUrl", redirect.ReturnURL))
	if n.eventBus != nil {
		n.eventBus.Publish(ctx, EventLoginRedirect, redirect)
	}
	return redirect
}

// TakeRedirect returns the pending redirect, if any, and clears it.
func (n *Navigator) TakeRedirect() (Redirect, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.pending == nil {
		return Redirect{}, false
	}
	r := *n.pending
	n.pending = nil
	return r, true
}
