package wellness

import (
	"math/rand"
	"sync"
	"time"
)

// Boosts serves motivational content. The daily quote is handed out at most
// once per calendar day.
type Boosts struct {
	mu        sync.Mutex
	lastQuote time.Time
	now       func() time.Time
}

func NewBoosts() *Boosts {
	return &Boosts{now: time.Now}
}

var quotes = []string{
	"Keep going, you're doing great!",
	"Every step is progress, no matter how small.",
	"Believe in yourself and all that you are.",
	"You are stronger than you think.",
	"Stay positive, work hard, make it happen.",
	"Consistency is key to success.",
	"Celebrate every small victory 🎉",
}

var reminders = []string{
	"Don't forget to stay hydrated! Drink some water 💧",
	"Time to move around! A little stretch goes a long way.",
	"Keep up the great work, you're making progress!",
	"Remember to take deep breaths and relax.",
	"Stay focused and keep pushing towards your goals.",
}

// DailyQuote returns a random quote, or the empty string when one was
// already given today.
func (b *Boosts) DailyQuote() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := b.now()
	if sameDay(b.lastQuote, now) {
		return ""
	}
	b.lastQuote = now
	return quotes[rand.Intn(len(quotes))]
}

// Reminder returns a random reminder.
func (b *Boosts) Reminder() string {
	return reminders[rand.Intn(len(reminders))]
}

// Praise returns a short congratulation.
func (b *Boosts) Praise() string {
	return "You crushed your calorie goal today! 👏"
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
