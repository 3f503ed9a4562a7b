package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/linkshrink/linkshrink/internal/core/domain"
	"github.com/linkshrink/linkshrink/internal/core/ports"
)

// maxCodeAttempts bounds the uniqueness retry loop when generating codes.
const maxCodeAttempts = 5

// LinkService implements short link use cases over the link and user repositories.
type LinkService struct {
	links ports.ShortURLRepository
	users ports.UserRepository
	log   zerolog.Logger
}

func NewLinkService(links ports.ShortURLRepository, users ports.UserRepository, log zerolog.Logger) *LinkService {
	return &LinkService{links: links, users: users, log: log}
}

// Create persists a new link under a freshly generated short code and appends
// its id to the owner's link list. The two writes are separate; a crash in
// between leaves a link without a back-reference, which is accepted behavior.
func (s *LinkService) Create(ctx context.Context, ownerID, targetURL string) (*domain.ShortURL, error) {
	var created *domain.ShortURL

	for attempt := 0; ; attempt++ {
		code, err := generateShortCode()
		if err != nil {
			return nil, fmt.Errorf("generate short code: %w", err)
		}

		created, err = s.links.Insert(ctx, &domain.ShortURL{
			ShortCode: code,
			TargetURL: targetURL,
			Clicks:    0,
			CreatedAt: time.Now().UTC(),
			OwnerID:   ownerID,
		})
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrCodeTaken) {
			return nil, err
		}
		if attempt+1 >= maxCodeAttempts {
			return nil, fmt.Errorf("short code space exhausted after %d attempts: %w", maxCodeAttempts, err)
		}
		s.log.Warn().Str("code", code).Msg("short code collision, retrying")
	}

	if err := s.users.AddLink(ctx, ownerID, created.ID); err != nil {
		return nil, fmt.Errorf("attach link to owner: %w", err)
	}

	s.log.Info().Str("code", created.ShortCode).Str("owner", ownerID).Msg("link created")
	return created, nil
}

// Resolve counts a click on the code and returns the link for redirecting.
// An unknown code mutates nothing.
func (s *LinkService) Resolve(ctx context.Context, code string) (*domain.ShortURL, error) {
	return s.links.IncrementClicks(ctx, code)
}

func (s *LinkService) Decode(ctx context.Context, code string) (*domain.ShortURL, error) {
	return s.links.FindByCode(ctx, code)
}

func (s *LinkService) List(ctx context.Context) ([]domain.ShortURL, error) {
	return s.links.FindAll(ctx)
}

// Delete removes a link on behalf of requesterID. The ownership gate folds
// "no such link" into ErrForbidden; the scoped re-fetch afterwards reports
// ErrLinkNotFound only if the record vanished in between.
func (s *LinkService) Delete(ctx context.Context, id, requesterID string) error {
	link, err := s.links.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrLinkNotFound) {
			return domain.ErrForbidden
		}
		return err
	}
	if link.OwnerID != requesterID {
		return domain.ErrForbidden
	}

	link, err = s.links.FindByIDAndOwner(ctx, id, requesterID)
	if err != nil {
		return err
	}

	if err := s.links.Delete(ctx, link.ID); err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	if err := s.users.RemoveLink(ctx, requesterID, link.ID); err != nil {
		// No compensating rollback; the link itself is already gone.
		return fmt.Errorf("detach link from owner: %w", err)
	}

	s.log.Info().Str("code", link.ShortCode).Str("owner", requesterID).Msg("link deleted")
	return nil
}
