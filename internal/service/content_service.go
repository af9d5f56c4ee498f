package service

import (
	"github.com/KianJanloo/burger-cafe-back/internal/domain"
)

type (
	CommentService     = Resource[domain.Comment, domain.CreateComment, domain.UpdateComment]
	FooterService      = Resource[domain.Footer, domain.CreateFooter, domain.UpdateFooter]
	CafeDetailsService = Resource[domain.CafeDetails, domain.CreateCafeDetails, domain.UpdateCafeDetails]
	StoryService       = Resource[domain.Story, domain.CreateStory, domain.UpdateStory]
	TeamMemberService  = Resource[domain.TeamMember, domain.CreateTeamMember, domain.UpdateTeamMember]
)

func NewCommentService(repo Repository[domain.Comment]) *CommentService {
	return NewResource[domain.Comment, domain.CreateComment, domain.UpdateComment](repo)
}

func NewFooterService(repo Repository[domain.Footer]) *FooterService {
	return NewResource[domain.Footer, domain.CreateFooter, domain.UpdateFooter](repo)
}

func NewCafeDetailsService(repo Repository[domain.CafeDetails]) *CafeDetailsService {
	return NewResource[domain.CafeDetails, domain.CreateCafeDetails, domain.UpdateCafeDetails](repo)
}

func NewStoryService(repo Repository[domain.Story]) *StoryService {
	return NewResource[domain.Story, domain.CreateStory, domain.UpdateStory](repo)
}

func NewTeamMemberService(repo Repository[domain.TeamMember]) *TeamMemberService {
	return NewResource[domain.TeamMember, domain.CreateTeamMember, domain.UpdateTeamMember](repo)
}
