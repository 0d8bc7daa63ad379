package app

import "context"

// noButtonTexts are the escalating replies shown each time the "no" button
// is pressed. After the last one the button disappears for good.
var noButtonTexts = []string{
	"让我想想...",
	"真的不考虑一下吗？",
	"给我一次机会好不好？",
	"我会对你很好的！",
	"难道你不想试试看吗？",
	"最后一次机会哦～",
}

// AcceptConfession runs the one-way NotAsked -> Accepted transition as one
// explicit sequence: mark the flag, then stamp the "together" milestone with
// today's date. There is no declined state; a "no" only changes what the
// host shows.
func (a *App) AcceptConfession(ctx context.Context) {
	a.gateway.SetConfessionAccepted(ctx)
	a.registry.SetTogetherDate(ctx)
	a.log.Info(ctx, "confession accepted")
}

// ResetConfession is the administrative reset back to NotAsked. Other data
// is untouched; the milestone keeps its date until a full reset.
func (a *App) ResetConfession(ctx context.Context) {
	a.gateway.ResetConfessionOnly(ctx)
}

// NoResponse returns the reply for the n-th "no" press (1-based). It reports
// false once the texts are exhausted and the button should disappear.
func NoResponse(n int) (string, bool) {
	if n < 1 || n >= len(noButtonTexts) {
		return "", false
	}
	return noButtonTexts[n], true
}

// NoButtonLabel is the initial label of the "no" button.
func NoButtonLabel() string {
	return noButtonTexts[0]
}
