package entities

// MockImages are the stock portraits handed out to new participants
var MockImages = []string{
	"https://images.unsplash.com/photo-1534528741775-53994a69daeb?auto=format&fit=crop&w=400&h=400",
	"https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?auto=format&fit=crop&w=400&h=400",
	"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?auto=format&fit=crop&w=400&h=400",
	"https://images.unsplash.com/photo-1494790108377-be9c29b29330?auto=format&fit=crop&w=400&h=400",
	"https://images.unsplash.com/photo-1500648767791-00dcc994a43e?auto=format&fit=crop&w=400&h=400",
}

// DefaultDetails returns the meeting details the mock starts with
func DefaultDetails() MeetingDetails {
	return MeetingDetails{
		Time:        "10:53 AM",
		Code:        "dzt-mroa-txo",
		IsRecording: false,
		Theme:       ThemeGradient,
		Layout:      LayoutAuto,
	}
}

// SeedParticipants returns a fresh copy of the starting roster
func SeedParticipants() []Participant {
	image := func(i int) *string {
		v := MockImages[i]
		return &v
	}

	return []Participant{
		{
			ID:           "1",
			Name:         "Algo Tutor",
			ImageURL:     image(0),
			IsVideoOff:   true,
			IsSpeaking:   true,
			IsPresenting: true,
		},
		{
			ID:         "2",
			Name:       "S Yuvaraj",
			ImageURL:   image(1),
			IsMuted:    true,
			IsVideoOff: true,
		},
		{
			ID:         "3",
			Name:       "A Anandaraj",
			ImageURL:   image(2),
			IsMuted:    true,
			IsVideoOff: true,
		},
		{
			ID:         "4",
			Name:       "M Suriya",
			ImageURL:   image(3),
			IsMuted:    true,
			IsVideoOff: true,
		},
	}
}
