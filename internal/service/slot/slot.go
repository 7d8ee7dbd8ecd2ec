package slot

import (
	"fmt"
	"time"
)

// Window is a contiguous block of delivery hours, [StartHour, EndHour).
type Window struct {
	StartHour int
	EndHour   int
}

// Label renders the window on a 12-hour clock, e.g. "8 AM to 12 PM".
func (w Window) Label() string {
	return fmt.Sprintf("%s to %s", hourLabel(w.StartHour), hourLabel(w.EndHour))
}

func hourLabel(h int) string {
	h %= 24
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d %s", h12, suffix)
}

// Selection is the window chosen for a delivery.
type Selection struct {
	ScheduledAt time.Time
	Window      Window
	Label       string
	// RolledOver is set when the window had to move to the next day.
	RolledOver bool
}

// Windows splits the configured day. The last window is clipped to EndHour when
// SplitHours does not divide the range evenly.
func Windows(cfg Config) []Window {
	cfg = cfg.Normalize()
	out := make([]Window, 0, (cfg.EndHour-cfg.StartHour+cfg.SplitHours-1)/cfg.SplitHours)
	for s := cfg.StartHour; s < cfg.EndHour; s += cfg.SplitHours {
		out = append(out, Window{StartHour: s, EndHour: min(s+cfg.SplitHours, cfg.EndHour)})
	}
	return out
}

// Next picks the delivery window for an order placed at now.
//
// The window always follows from now's hour: a customer inside a window gets the following
// one, and a window that has not started yet (including one starting this very hour) is
// taken as is. Past the last window, or inside it, the first window of the following day is
// used. The window is placed on target's calendar date, or on now's date when target is nil.
func Next(cfg Config, now time.Time, target *time.Time) Selection {
	ws := Windows(cfg)

	base := startOfDay(now, now.Location())
	if target != nil {
		// the calendar date as written, placed in now's location
		base = time.Date(target.Year(), target.Month(), target.Day(), 0, 0, 0, 0, now.Location())
	}

	h := now.Hour()
	for i, w := range ws {
		if w.StartHour < h && h < w.EndHour {
			if i+1 < len(ws) {
				return selection(ws[i+1], base, false)
			}
			break
		}
		if h <= w.StartHour {
			return selection(w, base, false)
		}
	}
	return selection(ws[0], base.AddDate(0, 0, 1), true)
}

func selection(w Window, day time.Time, rolled bool) Selection {
	return Selection{
		ScheduledAt: time.Date(day.Year(), day.Month(), day.Day(), w.StartHour, 0, 0, 0, day.Location()),
		Window:      w,
		Label:       w.Label(),
		RolledOver:  rolled,
	}
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
