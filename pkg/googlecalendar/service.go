package googlecalendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Timezone all appointment events are created in
const Timezone = "Europe/Paris"

// EventInput carries the appointment fields used to build a calendar event
type EventInput struct {
	Summary        string
	Description    string
	Start          time.Time
	DurationMin    int
	OrganizerName  string
	OrganizerEmail string
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (s *Service) getCalendarService(ctx context.Context, accessToken string) (*calendar.Service, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))

	srv, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Calendar service: %v", err)
	}

	return srv, nil
}

// CreateEvent inserts the appointment into the user's primary calendar and
// returns the event's public link. The event spans [start, start+duration)
// with a mail reminder 24h before and a popup 30min before.
func (s *Service) CreateEvent(ctx context.Context, accessToken string, in EventInput) (string, error) {
	srv, err := s.getCalendarService(ctx, accessToken)
	if err != nil {
		return "", err
	}

	end := in.Start.Add(time.Duration(in.DurationMin) * time.Minute)

	event := &calendar.Event{
		Summary:     in.Summary,
		Description: in.Description,
		Start: &calendar.EventDateTime{
			DateTime: in.Start.Format(time.RFC3339),
			TimeZone: Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: Timezone,
		},
		Attendees: []*calendar.EventAttendee{
			{Email: in.OrganizerEmail, DisplayName: in.OrganizerName},
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 30},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := srv.Events.Insert("primary", event).Do()
	if err != nil {
		return "", fmt.Errorf("unable to create event: %v", err)
	}

	return created.HtmlLink, nil
}
