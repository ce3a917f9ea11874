// Package notify pushes a short wear summary to a shoutrrr service URL
// when an analyzed drive crosses into Poor or Critical health.
package notify

import (
	"fmt"

	"github.com/nicholas-fedor/shoutrrr"

	"ssdlife/model"
)

// Sender abstracts the delivery mechanism for tests.
type Sender interface {
	Send(serviceURL, message string) error
}

// ShoutrrrSender delivers via the shoutrrr library (Discord, Telegram,
// Slack, generic webhooks, and the rest of its service catalog).
type ShoutrrrSender struct{}

func (ShoutrrrSender) Send(serviceURL, message string) error {
	return shoutrrr.Send(serviceURL, message)
}

// ShouldNotify reports whether the health label warrants a push.
func ShouldNotify(h model.HealthLabel) bool {
	return h == model.HealthPoor || h == model.HealthCritical
}

// Message builds the one-line summary sent to the notification target.
func Message(rep *model.Report) string {
	remaining := "indefinite remaining life"
	if !rep.RemainingIndefinite() {
		remaining = fmt.Sprintf("~%.0f days remaining", rep.EstimatedRemainingDays)
	}
	return fmt.Sprintf("ssdlife: %s (%s) wear at %.1f%% (%s), %s",
		rep.B.Model, rep.B.Serial, rep.WearPercent, rep.Health, remaining)
}

// Dispatch sends the summary for a report when its health label
// crosses the notification threshold. Returns nil when no push is due.
func Dispatch(s Sender, serviceURL string, rep *model.Report) error {
	if serviceURL == "" || !ShouldNotify(rep.Health) {
		return nil
	}
	return s.Send(serviceURL, Message(rep))
}
