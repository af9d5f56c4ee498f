package transport

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
	"github.com/KianJanloo/burger-cafe-back/internal/service"
)

// ContentHandler serves the editorial resources that need nothing beyond
// plain CRUD: comments, footer, cafe details and the about-us pages.
type ContentHandler struct {
	comments    resourceHandler[domain.Comment, domain.CreateComment, domain.UpdateComment]
	footer      resourceHandler[domain.Footer, domain.CreateFooter, domain.UpdateFooter]
	cafeDetails resourceHandler[domain.CafeDetails, domain.CreateCafeDetails, domain.UpdateCafeDetails]
	stories     resourceHandler[domain.Story, domain.CreateStory, domain.UpdateStory]
	team        resourceHandler[domain.TeamMember, domain.CreateTeamMember, domain.UpdateTeamMember]
}

func NewContentHandler(
	comments *service.CommentService,
	footer *service.FooterService,
	cafeDetails *service.CafeDetailsService,
	stories *service.StoryService,
	team *service.TeamMemberService,
	logger *zap.Logger,
) *ContentHandler {
	return &ContentHandler{
		comments:    newResourceHandler[domain.Comment, domain.CreateComment, domain.UpdateComment](comments, "comment", logger),
		footer:      newResourceHandler[domain.Footer, domain.CreateFooter, domain.UpdateFooter](footer, "footer", logger),
		cafeDetails: newResourceHandler[domain.CafeDetails, domain.CreateCafeDetails, domain.UpdateCafeDetails](cafeDetails, "cafe details", logger),
		stories:     newResourceHandler[domain.Story, domain.CreateStory, domain.UpdateStory](stories, "story", logger),
		team:        newResourceHandler[domain.TeamMember, domain.CreateTeamMember, domain.UpdateTeamMember](team, "team member", logger),
	}
}

func (h *ContentHandler) RegisterRoutes(r chi.Router) {
	r.Route("/comments", func(r chi.Router) { h.comments.routes(r, nil) })
	r.Route("/footer", func(r chi.Router) { h.footer.routes(r, nil) })
	r.Route("/cafe-details", func(r chi.Router) { h.cafeDetails.routes(r, nil) })
	r.Route("/about-us", func(r chi.Router) {
		r.Route("/story", func(r chi.Router) { h.stories.routes(r, nil) })
		r.Route("/team", func(r chi.Router) { h.team.routes(r, nil) })
	})
}
