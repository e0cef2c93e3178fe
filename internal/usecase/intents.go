package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"museumpass/internal/data/entity"
	"museumpass/pkg/fuzzy"
)

// intent is one canned answer. Intents are tried in order and the first
// match wins.
type intent struct {
	name  string
	match func(ctx context.Context, text string) bool
	reply func(ctx context.Context, text string) string
}

var (
	greetingPattern = regexp.MustCompile(`\b(hi|hello|hey|good (morning|afternoon|evening))\b`)
	versusPattern   = regexp.MustCompile(`\bvs\b`)
	topPattern      = regexp.MustCompile(`top\s*(\d+)`)
)

var tierInfo = []struct {
	keyword string
	answer  string
}{
	{"elite", "The Elite ticket offers the best experience with exclusive access and perks but is more expensive. It includes a multilingual audio guide with refreshments and food, for 300 INR more than Standard."},
	{"premium", "The Premium ticket offers additional perks like priority access and light refreshments, for 100 INR more than Standard."},
	{"standard", "The Standard ticket is the most affordable and provides basic access to the museum."},
}

func (s *chatService) buildIntents() []intent {
	return []intent{
		{
			name:  "greeting",
			match: func(_ context.Context, text string) bool { return greetingPattern.MatchString(text) },
			reply: func(context.Context, string) string {
				return "Hello! How can I assist you with museum information or ticket booking today?"
			},
		},
		{
			name:  "thanks",
			match: func(_ context.Context, text string) bool { return containsAny(text, "thank", "appreciate", "grateful") },
			reply: func(context.Context, string) string {
				return "You're welcome! Let me know if you need more information."
			},
		},
		{
			name:  "booking",
			match: func(_ context.Context, text string) bool { return containsAny(text, "book", "reserve") },
			reply: s.bookingHint,
		},
		{
			name: "tier",
			match: func(_ context.Context, text string) bool {
				return containsAny(text, "elite", "premium", "standard", "luxurious", "affordable", "cheap") ||
					versusPattern.MatchString(text)
			},
			reply: func(_ context.Context, text string) string {
				for _, t := range tierInfo {
					if strings.Contains(text, t.keyword) {
						return t.answer
					}
				}
				return "I can provide details on Standard, Premium and Elite tickets. Let me know which one interests you."
			},
		},
		{
			name: "kids_price",
			match: func(_ context.Context, text string) bool {
				return (strings.Contains(text, "price") && containsAny(text, "kids", "children")) ||
					(strings.Contains(text, "concession") && strings.Contains(text, "ticket"))
			},
			reply: s.kidsPrice,
		},
		{
			name:  "price",
			match: func(_ context.Context, text string) bool { return containsAny(text, "price", "cost", "ticket") },
			reply: s.price,
		},
		{
			name:  "rating",
			match: func(_ context.Context, text string) bool { return strings.Contains(text, "rating") },
			reply: s.rating,
		},
		{
			name:  "contact",
			match: func(_ context.Context, text string) bool { return containsAny(text, "contact", "phone", "email") },
			reply: s.contact,
		},
		{
			name:  "location",
			match: func(ctx context.Context, text string) bool { return len(s.museumsNear(ctx, text)) > 0 },
			reply: s.location,
		},
		{
			name:  "top",
			match: func(_ context.Context, text string) bool { return topCount(text) > 0 },
			reply: s.topRated,
		},
	}
}

func (s *chatService) bookingHint(ctx context.Context, text string) string {
	for _, title := range s.catalog.Titles(ctx) {
		if strings.Contains(text, strings.ToLower(title)) {
			return fmt.Sprintf("To book tickets for %s, send your name, number of adults and kids, ticket type, date (YYYY-MM-DD) and time slot to /book_ticket.", title)
		}
	}
	return "Please specify the museum name for booking."
}

func (s *chatService) kidsPrice(ctx context.Context, text string) string {
	museum := s.bestTitle(ctx, text)
	if museum == nil {
		return "Sorry, I couldn't find a matching museum for your request."
	}
	return fmt.Sprintf("Price for Standard ticket: ₹%s for kids at %s", formatNumber(museum.Price/2), museum.Title)
}

func (s *chatService) price(ctx context.Context, text string) string {
	museum := s.bestTitle(ctx, text)
	if museum == nil {
		return "I couldn't find ticket price details for that museum. Please try specifying the exact museum name."
	}
	return fmt.Sprintf("Price for Standard ticket at %s: ₹%s", museum.Title, formatNumber(museum.Price))
}

func (s *chatService) rating(ctx context.Context, text string) string {
	museum := s.mentioned(ctx, text)
	if museum == nil {
		museum = s.bestTitle(ctx, text)
	}
	if museum == nil {
		return "Sorry, I couldn't find a matching museum for your request."
	}
	return fmt.Sprintf("%s - Rating: ⭐ %s", museum.Title, formatNumber(museum.Rating))
}

func (s *chatService) contact(ctx context.Context, text string) string {
	museum := s.bestTitle(ctx, text)
	if museum == nil || museum.Contact == "" {
		return "Sorry, I couldn't find a matching museum or contact details for your request. Please try specifying the exact museum name."
	}
	return fmt.Sprintf("%s - Contact: %s", museum.Title, museum.Contact)
}

func (s *chatService) location(ctx context.Context, text string) string {
	museums := s.museumsNear(ctx, text)

	lines := make([]string, len(museums))
	for i, m := range museums {
		lines[i] = fmt.Sprintf("- %s, ⭐%s, Address: %s", m.Title, formatNumber(m.Rating), m.Address)
	}
	return fmt.Sprintf("Here are the museums in %s:\n%s", museums[0].State, strings.Join(lines, "\n"))
}

// topCount is the N in "top N", or 0 when text asks for no museums at all.
func topCount(text string) int {
	m := topPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

func (s *chatService) topRated(ctx context.Context, text string) string {
	n := topCount(text)

	all, _ := s.catalog.FindAll(ctx)
	sorted := append([]*entity.Museum(nil), all...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	if n < len(sorted) {
		sorted = sorted[:n]
	}

	lines := make([]string, len(sorted))
	for i, m := range sorted {
		lines[i] = fmt.Sprintf("- %s, ⭐ %s", m.Title, formatNumber(m.Rating))
	}
	return "Here are the top museums:\n" + strings.Join(lines, "\n")
}

// bestTitle is the fuzzy title match for text, or nil below the threshold.
func (s *chatService) bestTitle(ctx context.Context, text string) *entity.Museum {
	museum, _, err := s.matcher.best(ctx, text)
	if err != nil {
		return nil
	}
	return museum
}

// mentioned returns the first museum whose title, location or state appears
// verbatim in text.
func (s *chatService) mentioned(ctx context.Context, text string) *entity.Museum {
	all, _ := s.catalog.FindAll(ctx)
	for _, m := range all {
		for _, field := range []string{m.Title, m.Location, m.State} {
			if field != "" && strings.Contains(text, strings.ToLower(field)) {
				return m
			}
		}
	}
	return nil
}

// museumsNear fuzzy-matches text against every location and state and returns
// the museums at the best place, or nil below the threshold.
func (s *chatService) museumsNear(ctx context.Context, text string) []*entity.Museum {
	all, _ := s.catalog.FindAll(ctx)

	places := make([]string, 0, 2*len(all))
	for _, m := range all {
		places = append(places, strings.ToLower(m.Location))
	}
	for _, m := range all {
		places = append(places, strings.ToLower(m.State))
	}

	match, ok := fuzzy.ExtractOne(text, places)
	if !ok || match.Score < s.threshold {
		return nil
	}

	var museums []*entity.Museum
	for _, m := range all {
		if strings.EqualFold(m.Location, match.Choice) || strings.EqualFold(m.State, match.Choice) {
			museums = append(museums, m)
		}
	}
	return museums
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
