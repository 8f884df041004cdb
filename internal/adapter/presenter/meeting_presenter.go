package presenter

import (
	"github.com/samber/lo"

	meetingDTO "github.com/johnquangdev/meet-mock/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meet-mock/internal/domain/entities"
	"github.com/johnquangdev/meet-mock/internal/usecase/layout"
	"github.com/johnquangdev/meet-mock/internal/usecase/meeting"
	"github.com/johnquangdev/meet-mock/internal/usecase/palette"
)

// ToColorResponse converts a palette entry to ColorResponse DTO
func ToColorResponse(index int, c palette.ColorPair) meetingDTO.ColorResponse {
	return meetingDTO.ColorResponse{
		Index:    index,
		Name:     c.Name,
		Avatar:   c.Avatar,
		Hex:      c.Hex,
		Gradient: c.Gradient,
	}
}

// ToPaletteResponse lists the whole palette
func ToPaletteResponse() *meetingDTO.PaletteResponse {
	colors := lo.Map(palette.Palette(), func(c palette.ColorPair, i int) meetingDTO.ColorResponse {
		return ToColorResponse(i, c)
	})
	return &meetingDTO.PaletteResponse{
		Size:   palette.Size,
		Colors: colors,
	}
}

// ToParticipantResponse converts a Participant entity to ParticipantResponse DTO
func ToParticipantResponse(p *entities.Participant) *meetingDTO.ParticipantResponse {
	if p == nil {
		return nil
	}

	return &meetingDTO.ParticipantResponse{
		ID:                  p.ID,
		Name:                p.Name,
		Initial:             p.InitialLetter(),
		ImageURL:            p.ImageURL,
		PresentationContent: p.PresentationContent,
		IsMuted:             p.IsMuted,
		IsVideoOff:          p.IsVideoOff,
		IsNetworkError:      p.IsNetworkError,
		IsSpeaking:          p.IsSpeaking,
		IsPinned:            p.IsPinned,
		IsHandRaised:        p.IsHandRaised,
		IsPresenting:        p.IsPresenting,
		Color:               ToColorResponse(palette.Index(p.Name), palette.ColorFor(p.Name)),
	}
}

// ToParticipantListResponse converts a slice of participants
func ToParticipantListResponse(participants []entities.Participant) []meetingDTO.ParticipantResponse {
	return lo.Map(participants, func(p entities.Participant, _ int) meetingDTO.ParticipantResponse {
		return *ToParticipantResponse(&p)
	})
}

// ToDetailsResponse converts MeetingDetails to DetailsResponse DTO
func ToDetailsResponse(d *entities.MeetingDetails) *meetingDTO.DetailsResponse {
	if d == nil {
		return nil
	}
	return &meetingDTO.DetailsResponse{
		Time:        d.Time,
		Code:        d.Code,
		IsRecording: d.IsRecording,
		Theme:       string(d.Theme),
		Layout:      string(d.Layout),
	}
}

// ToPlanResponse converts a layout plan to PlanResponse DTO
func ToPlanResponse(plan layout.Plan) *meetingDTO.PlanResponse {
	resp := &meetingDTO.PlanResponse{Kind: string(plan.Kind())}

	switch pl := plan.(type) {
	case layout.Sidebar:
		resp.Main = ToParticipantResponse(&pl.Main)
		resp.Others = ToParticipantListResponse(pl.Others)
	case layout.Spotlight:
		resp.Main = ToParticipantResponse(&pl.Main)
	case layout.Grid:
		resp.Columns = pl.Columns
		resp.Rows = pl.Rows
		resp.Participants = ToParticipantListResponse(pl.Participants)
	}

	return resp
}

// ToViewResponse converts the view toggles to ViewResponse DTO
func ToViewResponse(v meeting.ViewSnapshot) meetingDTO.ViewResponse {
	return meetingDTO.ViewResponse{
		ShowConfig:  v.ShowConfig,
		UIHidden:    v.UIHidden,
		Notice:      v.Notice,
		NoticeTTLMs: v.NoticeTTL.Milliseconds(),
	}
}

// ToMeetingResponse converts a snapshot to MeetingResponse DTO
func ToMeetingResponse(s *meeting.Snapshot) *meetingDTO.MeetingResponse {
	if s == nil {
		return nil
	}
	return &meetingDTO.MeetingResponse{
		Participants: ToParticipantListResponse(s.Participants),
		Details:      *ToDetailsResponse(&s.Details),
		Plan:         *ToPlanResponse(s.Plan),
		View:         ToViewResponse(s.View),
	}
}

// ToParticipantPatch converts an update request into a domain patch
func ToParticipantPatch(req *meetingDTO.UpdateParticipantRequest) entities.ParticipantPatch {
	return entities.ParticipantPatch{
		Name:                req.Name,
		ImageURL:            req.ImageURL,
		PresentationContent: req.PresentationContent,
		IsMuted:             req.IsMuted,
		IsVideoOff:          req.IsVideoOff,
		IsNetworkError:      req.IsNetworkError,
		IsSpeaking:          req.IsSpeaking,
		IsPinned:            req.IsPinned,
		IsHandRaised:        req.IsHandRaised,
		IsPresenting:        req.IsPresenting,
	}
}

// ToDetailsPatch converts a details request into a domain patch
func ToDetailsPatch(req *meetingDTO.UpdateDetailsRequest) entities.DetailsPatch {
	return entities.DetailsPatch{
		Time:        req.Time,
		Code:        req.Code,
		IsRecording: req.IsRecording,
		Theme:       req.Theme,
		Layout:      req.Layout,
	}
}
