package usecase

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"museumpass/internal/data/entity"
)

const dateLayout = "2006-01-02"

// Clock returns the current time. Tests pin it.
type Clock func() time.Time

// TimeSlots are the bookable entry times, in order.
var TimeSlots = []string{"10:00 AM", "11:00 AM", "12:00 PM", "1:00 PM", "2:00 PM", "3:00 PM", "4:00 PM", "5:00 PM"}

// tierSurcharge is added to the museum base price per ticket.
var tierSurcharge = map[entity.TicketType]float64{
	entity.TicketStandard: 0,
	entity.TicketPremium:  100,
	entity.TicketElite:    300,
}

var spaces = regexp.MustCompile(`\s+`)

// BookingRules validates booking requests against the calendar and capacity.
type BookingRules struct {
	MaxVisitorsPerDay int
	HorizonDays       int
	now               Clock
}

func NewBookingRules(maxVisitorsPerDay, horizonDays int, now Clock) *BookingRules {
	if now == nil {
		now = time.Now
	}
	return &BookingRules{
		MaxVisitorsPerDay: maxVisitorsPerDay,
		HorizonDays:       horizonDays,
		now:               now,
	}
}

// CheckedBooking holds the normalized values of a request that passed Check.
type CheckedBooking struct {
	Tier entity.TicketType
	Date time.Time
	Slot string
}

// Check runs the rules in order and stops at the first failure:
// tier, date format, past date, horizon, capacity, time slot.
func (r *BookingRules) Check(tier, date, slot string, used, requested int) (*CheckedBooking, error) {
	t, err := ParseTier(tier)
	if err != nil {
		return nil, err
	}

	d, err := r.ParseDate(date)
	if err != nil {
		return nil, err
	}

	if err := r.CheckCapacity(used, requested); err != nil {
		return nil, err
	}

	s, err := r.MatchSlot(d, slot)
	if err != nil {
		return nil, err
	}

	return &CheckedBooking{Tier: t, Date: d, Slot: s}, nil
}

func ParseTier(tier string) (entity.TicketType, error) {
	t := entity.TicketType(strings.ToLower(strings.TrimSpace(tier)))
	if _, ok := tierSurcharge[t]; !ok {
		return "", fmt.Errorf("%w %q: choose standard, premium or elite", ErrInvalidTier, tier)
	}
	return t, nil
}

// ParseDate accepts YYYY-MM-DD between today and today plus the horizon.
func (r *BookingRules) ParseDate(date string) (time.Time, error) {
	today := r.today()

	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(date), today.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	if d.Before(today) {
		return time.Time{}, ErrPastDate
	}

	if d.After(today.AddDate(0, 0, r.HorizonDays)) {
		return time.Time{}, fmt.Errorf("%w: bookings are only allowed within %d days from today", ErrDateTooFar, r.HorizonDays)
	}

	return d, nil
}

// CheckCapacity rejects a request that would push the day over the cap.
func (r *BookingRules) CheckCapacity(used, requested int) error {
	if used+requested > r.MaxVisitorsPerDay {
		return fmt.Errorf("%w (%d of %d places taken)", ErrFullyBooked, used, r.MaxVisitorsPerDay)
	}
	return nil
}

// AvailableSlots lists the slots still open on date. For today only slots
// starting after the current hour are offered.
func (r *BookingRules) AvailableSlots(date time.Time) []string {
	now := r.now()
	if !sameDay(date, now) {
		return append([]string(nil), TimeSlots...)
	}

	var open []string
	for _, slot := range TimeSlots {
		if slotHour(slot) > now.Hour() {
			open = append(open, slot)
		}
	}
	return open
}

// MatchSlot returns the canonical spelling of slot if it is open on date.
func (r *BookingRules) MatchSlot(date time.Time, slot string) (string, error) {
	open := r.AvailableSlots(date)
	want := NormalizeSlot(slot)
	for _, s := range open {
		if NormalizeSlot(s) == want {
			return s, nil
		}
	}

	if len(open) == 0 {
		return "", fmt.Errorf("%w: no time slots left on %s", ErrInvalidSlot, date.Format(dateLayout))
	}
	return "", fmt.Errorf("%w: choose from %s", ErrInvalidSlot, strings.Join(open, ", "))
}

func (r *BookingRules) today() time.Time {
	now := r.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// NormalizeSlot trims, collapses inner whitespace, upper-cases and drops dots,
// so "1:00 p.m." and "1:00 PM" compare equal.
func NormalizeSlot(slot string) string {
	s := spaces.ReplaceAllString(strings.ToUpper(strings.TrimSpace(slot)), " ")
	return strings.ReplaceAll(s, ".", "")
}

// slotHour is the 24h start hour of a listed slot.
func slotHour(slot string) int {
	t, err := time.Parse("3:04 PM", slot)
	if err != nil {
		return -1
	}
	return t.Hour()
}

// Price is adults at the tier price plus kids at half of it.
func Price(basePrice float64, tier entity.TicketType, adults, kids int) float64 {
	ticket := basePrice + tierSurcharge[tier]
	return float64(adults)*ticket + float64(kids)*ticket*0.5
}

func tierLabel(t entity.TicketType) string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
